package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pharma-erp/pharma-erp/internal/masterdata/shared"
	"github.com/pharma-erp/pharma-erp/internal/platform/db"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	List(ctx context.Context, params ListProductsParams) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, id int64, patch UpdateProductRequest) error
	Delete(ctx context.Context, id int64) error
}

type dbtx interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

const productColumns = `"prodCode", "prodName", "hsnCode", "packing", "purUnit", "salUnit",
	"prodTypeCode", "mfrCode", "mrp", "purTaxCode", "salTaxCode", "schTypeCode",
	"isActive", "inActiveFrom", "createdDate", "modifiedDate", "createdBy"`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ProdCode, &p.ProdName, &p.HSNCode, &p.Packing, &p.PurUnit, &p.SalUnit,
		&p.ProdTypeCode, &p.MfrCode, &p.MRP, &p.PurTaxCode, &p.SalTaxCode, &p.SchTypeCode,
		&p.IsActive, &p.InActiveFrom, &p.CreatedDate, &p.ModifiedDate, &p.CreatedBy,
	)
	return p, err
}

func (r *repository) List(ctx context.Context, params ListProductsParams) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM "ProdMast"`
	var args []any
	argPos := 1

	if params.IsActive != nil {
		query += fmt.Sprintf(` WHERE "isActive" = $%d`, argPos)
		args = append(args, *params.IsActive)
		argPos++
	}

	query += fmt.Sprintf(` ORDER BY "prodCode" LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, params.Limit, params.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	query := `SELECT ` + productColumns + ` FROM "ProdMast" WHERE "prodCode" = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, shared.ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	query := `INSERT INTO "ProdMast" (
			"prodName", "hsnCode", "packing", "purUnit", "salUnit",
			"prodTypeCode", "mfrCode", "mrp", "purTaxCode", "salTaxCode", "schTypeCode",
			"isActive", "inActiveFrom", "createdBy")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + productColumns
	created, err := scanProduct(r.db.QueryRow(ctx, query,
		p.ProdName, p.HSNCode, p.Packing, p.PurUnit, p.SalUnit,
		p.ProdTypeCode, p.MfrCode, p.MRP, p.PurTaxCode, p.SalTaxCode, p.SchTypeCode,
		p.IsActive, p.InActiveFrom, p.CreatedBy,
	))
	if err != nil {
		return Product{}, shared.WrapConstraint(err)
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateProductRequest) error {
	query := `UPDATE "ProdMast" SET "modifiedDate" = NOW()`
	var args []any
	argPos := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(`, %s = $%d`, column, argPos)
		args = append(args, value)
		argPos++
	}

	if patch.ProdName != nil {
		set(`"prodName"`, *patch.ProdName)
	}
	if patch.HSNCode != nil {
		set(`"hsnCode"`, *patch.HSNCode)
	}
	if patch.Packing != nil {
		set(`"packing"`, *patch.Packing)
	}
	if patch.PurUnit != nil {
		set(`"purUnit"`, *patch.PurUnit)
	}
	if patch.SalUnit != nil {
		set(`"salUnit"`, *patch.SalUnit)
	}
	if patch.ProdTypeCode != nil {
		set(`"prodTypeCode"`, *patch.ProdTypeCode)
	}
	if patch.MfrCode != nil {
		set(`"mfrCode"`, *patch.MfrCode)
	}
	if patch.MRP != nil {
		set(`"mrp"`, *patch.MRP)
	}
	if patch.PurTaxCode != nil {
		set(`"purTaxCode"`, *patch.PurTaxCode)
	}
	if patch.SalTaxCode != nil {
		set(`"salTaxCode"`, *patch.SalTaxCode)
	}
	if patch.SchTypeCode != nil {
		set(`"schTypeCode"`, *patch.SchTypeCode)
	}
	if patch.IsActive != nil {
		set(`"isActive"`, *patch.IsActive)
	}
	if patch.InActiveFrom != nil {
		set(`"inActiveFrom"`, *patch.InActiveFrom)
	}

	query += fmt.Sprintf(` WHERE "prodCode" = $%d`, argPos)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return shared.WrapConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "ProdMast" WHERE "prodCode" = $1`, id)
	if err != nil {
		return shared.WrapConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
