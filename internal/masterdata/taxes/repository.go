package taxes

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
	List(ctx context.Context, params shared.ListParams) ([]Tax, error)
	Get(ctx context.Context, id int64) (Tax, error)
	Create(ctx context.Context, tax Tax) (Tax, error)
	Update(ctx context.Context, id int64, patch UpdateTaxRequest) error
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

const taxColumns = `"taxCode", "taxDesc", "igst", "cgst", "sgst", "createdDate", "modifiedDate", "createdBy"`

func scanTax(row pgx.Row) (Tax, error) {
	var t Tax
	err := row.Scan(&t.TaxCode, &t.TaxDesc, &t.IGST, &t.CGST, &t.SGST, &t.CreatedDate, &t.ModifiedDate, &t.CreatedBy)
	return t, err
}

func (r *repository) List(ctx context.Context, params shared.ListParams) ([]Tax, error) {
	query := `SELECT ` + taxColumns + ` FROM "TaxMast" ORDER BY "taxCode" LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, params.Limit, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taxes := []Tax{}
	for rows.Next() {
		t, err := scanTax(rows)
		if err != nil {
			return nil, err
		}
		taxes = append(taxes, t)
	}
	return taxes, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Tax, error) {
	query := `SELECT ` + taxColumns + ` FROM "TaxMast" WHERE "taxCode" = $1`
	t, err := scanTax(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Tax{}, shared.ErrNotFound
		}
		return Tax{}, err
	}
	return t, nil
}

func (r *repository) Create(ctx context.Context, tax Tax) (Tax, error) {
	query := `INSERT INTO "TaxMast" ("taxDesc", "igst", "cgst", "sgst", "createdBy")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + taxColumns
	created, err := scanTax(r.db.QueryRow(ctx, query, tax.TaxDesc, tax.IGST, tax.CGST, tax.SGST, tax.CreatedBy))
	if err != nil {
		return Tax{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateTaxRequest) error {
	query := `UPDATE "TaxMast" SET "modifiedDate" = NOW()`
	var args []any
	argPos := 1

	if patch.TaxDesc != nil {
		query += fmt.Sprintf(`, "taxDesc" = $%d`, argPos)
		args = append(args, *patch.TaxDesc)
		argPos++
	}
	if patch.IGST != nil {
		query += fmt.Sprintf(`, "igst" = $%d`, argPos)
		args = append(args, *patch.IGST)
		argPos++
	}
	if patch.CGST != nil {
		query += fmt.Sprintf(`, "cgst" = $%d`, argPos)
		args = append(args, *patch.CGST)
		argPos++
	}
	if patch.SGST != nil {
		query += fmt.Sprintf(`, "sgst" = $%d`, argPos)
		args = append(args, *patch.SGST)
		argPos++
	}

	query += fmt.Sprintf(` WHERE "taxCode" = $%d`, argPos)
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
