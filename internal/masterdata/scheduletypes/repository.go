package scheduletypes

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
	List(ctx context.Context, params shared.ListParams) ([]ScheduleType, error)
	Get(ctx context.Context, id int64) (ScheduleType, error)
	Create(ctx context.Context, st ScheduleType) (ScheduleType, error)
	Update(ctx context.Context, id int64, patch UpdateScheduleTypeRequest) error
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

const scheduleTypeColumns = `"schTypeCode", "schTypeName", "createdDate", "modifiedDate", "createdBy"`

func scanScheduleType(row pgx.Row) (ScheduleType, error) {
	var st ScheduleType
	err := row.Scan(&st.SchTypeCode, &st.SchTypeName, &st.CreatedDate, &st.ModifiedDate, &st.CreatedBy)
	return st, err
}

func (r *repository) List(ctx context.Context, params shared.ListParams) ([]ScheduleType, error) {
	query := `SELECT ` + scheduleTypeColumns + ` FROM "SchTypeMast" ORDER BY "schTypeCode" LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, params.Limit, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []ScheduleType{}
	for rows.Next() {
		st, err := scanScheduleType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, st)
	}
	return types, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (ScheduleType, error) {
	query := `SELECT ` + scheduleTypeColumns + ` FROM "SchTypeMast" WHERE "schTypeCode" = $1`
	st, err := scanScheduleType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ScheduleType{}, shared.ErrNotFound
		}
		return ScheduleType{}, err
	}
	return st, nil
}

func (r *repository) Create(ctx context.Context, st ScheduleType) (ScheduleType, error) {
	query := `INSERT INTO "SchTypeMast" ("schTypeName", "createdBy")
		VALUES ($1, $2)
		RETURNING ` + scheduleTypeColumns
	created, err := scanScheduleType(r.db.QueryRow(ctx, query, st.SchTypeName, st.CreatedBy))
	if err != nil {
		return ScheduleType{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateScheduleTypeRequest) error {
	query := `UPDATE "SchTypeMast" SET "modifiedDate" = NOW()`
	var args []any
	argPos := 1

	if patch.SchTypeName != nil {
		query += fmt.Sprintf(`, "schTypeName" = $%d`, argPos)
		args = append(args, *patch.SchTypeName)
		argPos++
	}

	query += fmt.Sprintf(` WHERE "schTypeCode" = $%d`, argPos)
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
