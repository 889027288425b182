package productgenerics

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
	List(ctx context.Context, params ListProductGenericsParams) ([]ProductGeneric, error)
	ExistsPair(ctx context.Context, prodCode, genericCode int64) (bool, error)
	Create(ctx context.Context, pg ProductGeneric) (ProductGeneric, error)
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

const productGenericColumns = `"id", "prodCode", "genericCode", "genericStrength", "createdDate", "modifiedDate", "createdBy"`

func scanProductGeneric(row pgx.Row) (ProductGeneric, error) {
	var pg ProductGeneric
	err := row.Scan(
		&pg.ID, &pg.ProdCode, &pg.GenericCode, &pg.GenericStrength,
		&pg.CreatedDate, &pg.ModifiedDate, &pg.CreatedBy,
	)
	return pg, err
}

func (r *repository) List(ctx context.Context, params ListProductGenericsParams) ([]ProductGeneric, error) {
	query := `SELECT ` + productGenericColumns + ` FROM "ProdGeneric"`
	var args []any
	var conds []string
	argPos := 1

	if params.ProductID != nil {
		conds = append(conds, fmt.Sprintf(`"prodCode" = $%d`, argPos))
		args = append(args, *params.ProductID)
		argPos++
	}
	if params.GenericID != nil {
		conds = append(conds, fmt.Sprintf(`"genericCode" = $%d`, argPos))
		args = append(args, *params.GenericID)
		argPos++
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += fmt.Sprintf(` ORDER BY "id" LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, params.Limit, params.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []ProductGeneric{}
	for rows.Next() {
		pg, err := scanProductGeneric(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, pg)
	}
	return list, rows.Err()
}

func (r *repository) ExistsPair(ctx context.Context, prodCode, genericCode int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM "ProdGeneric" WHERE "prodCode" = $1 AND "genericCode" = $2)`,
		prodCode, genericCode,
	).Scan(&exists)
	return exists, err
}

func (r *repository) Create(ctx context.Context, pg ProductGeneric) (ProductGeneric, error) {
	query := `INSERT INTO "ProdGeneric" ("prodCode", "genericCode", "genericStrength", "createdBy")
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productGenericColumns
	created, err := scanProductGeneric(r.db.QueryRow(ctx, query,
		pg.ProdCode, pg.GenericCode, pg.GenericStrength, pg.CreatedBy,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "_prodCode_genericCode_uc" {
			return ProductGeneric{}, shared.ErrDuplicateMapping
		}
		return ProductGeneric{}, shared.WrapConstraint(err)
	}
	return created, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "ProdGeneric" WHERE "id" = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
