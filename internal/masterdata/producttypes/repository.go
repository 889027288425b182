package producttypes

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
	List(ctx context.Context, params shared.ListParams) ([]ProductType, error)
	Get(ctx context.Context, id int64) (ProductType, error)
	Create(ctx context.Context, pt ProductType) (ProductType, error)
	Update(ctx context.Context, id int64, patch UpdateProductTypeRequest) error
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

const productTypeColumns = `"prodTypeCode", "prodTypeName", "prodTypeShortName", "createdDate", "modifiedDate", "createdBy"`

func scanProductType(row pgx.Row) (ProductType, error) {
	var pt ProductType
	err := row.Scan(&pt.ProdTypeCode, &pt.ProdTypeName, &pt.ProdTypeShortName, &pt.CreatedDate, &pt.ModifiedDate, &pt.CreatedBy)
	return pt, err
}

func (r *repository) List(ctx context.Context, params shared.ListParams) ([]ProductType, error) {
	query := `SELECT ` + productTypeColumns + ` FROM "ProdTypeMast" ORDER BY "prodTypeCode" LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, params.Limit, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []ProductType{}
	for rows.Next() {
		pt, err := scanProductType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (ProductType, error) {
	query := `SELECT ` + productTypeColumns + ` FROM "ProdTypeMast" WHERE "prodTypeCode" = $1`
	pt, err := scanProductType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProductType{}, shared.ErrNotFound
		}
		return ProductType{}, err
	}
	return pt, nil
}

func (r *repository) Create(ctx context.Context, pt ProductType) (ProductType, error) {
	query := `INSERT INTO "ProdTypeMast" ("prodTypeName", "prodTypeShortName", "createdBy")
		VALUES ($1, $2, $3)
		RETURNING ` + productTypeColumns
	created, err := scanProductType(r.db.QueryRow(ctx, query, pt.ProdTypeName, pt.ProdTypeShortName, pt.CreatedBy))
	if err != nil {
		return ProductType{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateProductTypeRequest) error {
	query := `UPDATE "ProdTypeMast" SET "modifiedDate" = NOW()`
	var args []any
	argPos := 1

	if patch.ProdTypeName != nil {
		query += fmt.Sprintf(`, "prodTypeName" = $%d`, argPos)
		args = append(args, *patch.ProdTypeName)
		argPos++
	}
	if patch.ProdTypeShortName != nil {
		query += fmt.Sprintf(`, "prodTypeShortName" = $%d`, argPos)
		args = append(args, *patch.ProdTypeShortName)
		argPos++
	}

	query += fmt.Sprintf(` WHERE "prodTypeCode" = $%d`, argPos)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
