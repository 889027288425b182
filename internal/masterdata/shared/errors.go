package shared

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pharma-erp/pharma-erp/internal/platform/httpx"
)

// Sentinels shared by every master-data package. They alias the transport
// sentinels so errors.Is holds across layers.
var (
	ErrNotFound         = httpx.ErrNotFound
	ErrValidation       = httpx.ErrValidation
	ErrDuplicateMapping = httpx.ErrDuplicate
	ErrConstraint       = httpx.ErrConstraint
)

// FieldError reports which field failed which validation rule.
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s failed rule %s", e.Field, e.Rule)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

// Validation converts a validator error into a FieldError carrying the first
// failed field and rule.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: verrs[0].Field(), Rule: verrs[0].Tag()}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// WrapConstraint maps foreign-key and uniqueness violations reported by the
// storage engine onto ErrConstraint, keeping the raw driver error wrapped
// rather than leaked.
func WrapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fmt.Errorf("%w: %s: %w", ErrConstraint, pgErr.ConstraintName, err)
		case "23505":
			return fmt.Errorf("%w: %s: %w", ErrConstraint, pgErr.ConstraintName, err)
		}
	}
	return err
}
