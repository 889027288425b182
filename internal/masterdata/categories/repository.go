package categories

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
	List(ctx context.Context, params shared.ListParams) ([]Category, error)
	Get(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, cat Category) (Category, error)
	Update(ctx context.Context, id int64, patch UpdateCategoryRequest) error
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

const categoryColumns = `"prodCatCode", "prodCatName", "createdDate", "modifiedDate", "createdBy"`

func scanCategory(row pgx.Row) (Category, error) {
	var c Category
	err := row.Scan(&c.ProdCatCode, &c.ProdCatName, &c.CreatedDate, &c.ModifiedDate, &c.CreatedBy)
	return c, err
}

func (r *repository) List(ctx context.Context, params shared.ListParams) ([]Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM "ProdCatMast" ORDER BY "prodCatCode" LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, params.Limit, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM "ProdCatMast" WHERE "prodCatCode" = $1`
	c, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, shared.ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, cat Category) (Category, error) {
	query := `INSERT INTO "ProdCatMast" ("prodCatName", "createdBy")
		VALUES ($1, $2)
		RETURNING ` + categoryColumns
	created, err := scanCategory(r.db.QueryRow(ctx, query, cat.ProdCatName, cat.CreatedBy))
	if err != nil {
		return Category{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateCategoryRequest) error {
	query := `UPDATE "ProdCatMast" SET "modifiedDate" = NOW()`
	var args []any
	argPos := 1

	if patch.ProdCatName != nil {
		query += fmt.Sprintf(`, "prodCatName" = $%d`, argPos)
		args = append(args, *patch.ProdCatName)
		argPos++
	}

	query += fmt.Sprintf(` WHERE "prodCatCode" = $%d`, argPos)
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
