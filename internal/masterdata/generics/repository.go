package generics

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
	List(ctx context.Context, params ListGenericsParams) ([]Generic, error)
	Get(ctx context.Context, id int64) (Generic, error)
	Create(ctx context.Context, g Generic) (Generic, error)
	Update(ctx context.Context, id int64, patch UpdateGenericRequest) error
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

const genericColumns = `"genericCode", "genericName", "prodCatCode", "createdDate", "modifiedDate", "createdBy"`

func scanGeneric(row pgx.Row) (Generic, error) {
	var g Generic
	err := row.Scan(&g.GenericCode, &g.GenericName, &g.ProdCatCode, &g.CreatedDate, &g.ModifiedDate, &g.CreatedBy)
	return g, err
}

func (r *repository) List(ctx context.Context, params ListGenericsParams) ([]Generic, error) {
	query := `SELECT ` + genericColumns + ` FROM "GenericMast"`
	var args []any
	argPos := 1

	// A NULL category never equals the filter value, so uncategorized rows
	// drop out of filtered listings.
	if params.CategoryID != nil {
		query += fmt.Sprintf(` WHERE "prodCatCode" = $%d`, argPos)
		args = append(args, *params.CategoryID)
		argPos++
	}

	query += fmt.Sprintf(` ORDER BY "genericCode" LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, params.Limit, params.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Generic{}
	for rows.Next() {
		g, err := scanGeneric(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Generic, error) {
	query := `SELECT ` + genericColumns + ` FROM "GenericMast" WHERE "genericCode" = $1`
	g, err := scanGeneric(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Generic{}, shared.ErrNotFound
		}
		return Generic{}, err
	}
	return g, nil
}

func (r *repository) Create(ctx context.Context, g Generic) (Generic, error) {
	query := `INSERT INTO "GenericMast" ("genericName", "prodCatCode", "createdBy")
		VALUES ($1, $2, $3)
		RETURNING ` + genericColumns
	created, err := scanGeneric(r.db.QueryRow(ctx, query, g.GenericName, g.ProdCatCode, g.CreatedBy))
	if err != nil {
		return Generic{}, shared.WrapConstraint(err)
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateGenericRequest) error {
	query := `UPDATE "GenericMast" SET "modifiedDate" = NOW()`
	var args []any
	argPos := 1

	if patch.GenericName != nil {
		query += fmt.Sprintf(`, "genericName" = $%d`, argPos)
		args = append(args, *patch.GenericName)
		argPos++
	}
	if patch.ProdCatCode != nil {
		query += fmt.Sprintf(`, "prodCatCode" = $%d`, argPos)
		args = append(args, *patch.ProdCatCode)
		argPos++
	}

	query += fmt.Sprintf(` WHERE "genericCode" = $%d`, argPos)
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
