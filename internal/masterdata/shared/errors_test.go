package shared

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorUnwrapsToValidation(t *testing.T) {
	err := &FieldError{Field: "TaxDesc", Rule: "required"}
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "TaxDesc")
	assert.Contains(t, err.Error(), "required")
}

func TestValidationMapsValidatorErrors(t *testing.T) {
	type sample struct {
		Name string `validate:"required,max=3"`
	}
	v := validator.New()

	err := Validation(v.Struct(sample{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Name", fe.Field)
	assert.Equal(t, "required", fe.Rule)

	err = Validation(v.Struct(sample{Name: "toolong"}))
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "max", fe.Rule)
}

func TestValidationNilPassthrough(t *testing.T) {
	assert.NoError(t, Validation(nil))
}

func TestWrapConstraintForeignKey(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "ProdMast_mfrCode_fkey"}
	err := WrapConstraint(pgErr)
	assert.True(t, errors.Is(err, ErrConstraint))
	assert.Contains(t, err.Error(), "ProdMast_mfrCode_fkey")
}

func TestWrapConstraintUnique(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "_prodCode_genericCode_uc"}
	err := WrapConstraint(pgErr)
	assert.True(t, errors.Is(err, ErrConstraint))
}

func TestWrapConstraintLeavesOtherErrors(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Equal(t, plain, WrapConstraint(plain))
	assert.False(t, errors.Is(WrapConstraint(plain), ErrConstraint))
}
