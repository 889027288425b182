package manufacturers

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
	List(ctx context.Context, params shared.ListParams) ([]Manufacturer, error)
	Get(ctx context.Context, id int64) (Manufacturer, error)
	Create(ctx context.Context, m Manufacturer) (Manufacturer, error)
	Update(ctx context.Context, id int64, patch UpdateManufacturerRequest) error
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

const mfrColumns = `"mfrCode", "mfrName", "mfrShortName", "address", "city", "state", "pin", "cpName", "cpPhone", "email", "createdDate", "modifiedDate", "createdBy"`

func scanManufacturer(row pgx.Row) (Manufacturer, error) {
	var m Manufacturer
	err := row.Scan(
		&m.MfrCode, &m.MfrName, &m.MfrShortName,
		&m.Address, &m.City, &m.State, &m.Pin,
		&m.CPName, &m.CPPhone, &m.Email,
		&m.CreatedDate, &m.ModifiedDate, &m.CreatedBy,
	)
	return m, err
}

func (r *repository) List(ctx context.Context, params shared.ListParams) ([]Manufacturer, error) {
	query := `SELECT ` + mfrColumns + ` FROM "MfrMast" ORDER BY "mfrCode" LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, params.Limit, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mfrs := []Manufacturer{}
	for rows.Next() {
		m, err := scanManufacturer(rows)
		if err != nil {
			return nil, err
		}
		mfrs = append(mfrs, m)
	}
	return mfrs, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Manufacturer, error) {
	query := `SELECT ` + mfrColumns + ` FROM "MfrMast" WHERE "mfrCode" = $1`
	m, err := scanManufacturer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Manufacturer{}, shared.ErrNotFound
		}
		return Manufacturer{}, err
	}
	return m, nil
}

func (r *repository) Create(ctx context.Context, m Manufacturer) (Manufacturer, error) {
	query := `INSERT INTO "MfrMast" ("mfrName", "mfrShortName", "address", "city", "state", "pin", "cpName", "cpPhone", "email", "createdBy")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + mfrColumns
	created, err := scanManufacturer(r.db.QueryRow(ctx, query,
		m.MfrName, m.MfrShortName, m.Address, m.City, m.State, m.Pin,
		m.CPName, m.CPPhone, m.Email, m.CreatedBy,
	))
	if err != nil {
		return Manufacturer{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateManufacturerRequest) error {
	query := `UPDATE "MfrMast" SET "modifiedDate" = NOW()`
	var args []any
	argPos := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(`, %s = $%d`, column, argPos)
		args = append(args, value)
		argPos++
	}

	if patch.MfrName != nil {
		set(`"mfrName"`, *patch.MfrName)
	}
	if patch.MfrShortName != nil {
		set(`"mfrShortName"`, *patch.MfrShortName)
	}
	if patch.Address != nil {
		set(`"address"`, *patch.Address)
	}
	if patch.City != nil {
		set(`"city"`, *patch.City)
	}
	if patch.State != nil {
		set(`"state"`, *patch.State)
	}
	if patch.Pin != nil {
		set(`"pin"`, *patch.Pin)
	}
	if patch.CPName != nil {
		set(`"cpName"`, *patch.CPName)
	}
	if patch.CPPhone != nil {
		set(`"cpPhone"`, *patch.CPPhone)
	}
	if patch.Email != nil {
		set(`"email"`, *patch.Email)
	}

	query += fmt.Sprintf(` WHERE "mfrCode" = $%d`, argPos)
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
