package taxes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharma-erp/pharma-erp/internal/masterdata/shared"
)

type mockRepository struct {
	taxes  map[int64]*Tax
	nextID int64

	txError     error
	createError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{taxes: make(map[int64]*Tax), nextID: 1}
}

func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	if m.txError != nil {
		return m.txError
	}
	return fn(ctx, m)
}

func (m *mockRepository) List(ctx context.Context, params shared.ListParams) ([]Tax, error) {
	list := []Tax{}
	for id := int64(1); id < m.nextID; id++ {
		if tax, ok := m.taxes[id]; ok {
			list = append(list, *tax)
		}
	}
	if params.Skip >= len(list) {
		return []Tax{}, nil
	}
	list = list[params.Skip:]
	if params.Limit < len(list) {
		list = list[:params.Limit]
	}
	return list, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Tax, error) {
	tax, ok := m.taxes[id]
	if !ok {
		return Tax{}, shared.ErrNotFound
	}
	return *tax, nil
}

func (m *mockRepository) Create(ctx context.Context, tax Tax) (Tax, error) {
	if m.createError != nil {
		return Tax{}, m.createError
	}
	tax.TaxCode = m.nextID
	tax.CreatedDate = time.Now()
	m.taxes[tax.TaxCode] = &tax
	m.nextID++
	return tax, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, patch UpdateTaxRequest) error {
	tax, ok := m.taxes[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := time.Now()
	tax.ModifiedDate = &now
	if patch.TaxDesc != nil {
		tax.TaxDesc = *patch.TaxDesc
	}
	if patch.IGST != nil {
		tax.IGST = *patch.IGST
	}
	if patch.CGST != nil {
		tax.CGST = *patch.CGST
	}
	if patch.SGST != nil {
		tax.SGST = *patch.SGST
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestCreateTax(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateTaxRequest{
		TaxDesc:   "GST 18%",
		IGST:      18,
		CGST:      9,
		SGST:      9,
		CreatedBy: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.TaxCode)
	assert.Equal(t, "GST 18%", created.TaxDesc)
	assert.Nil(t, created.ModifiedDate)

	got, err := svc.Get(context.Background(), created.TaxCode)
	require.NoError(t, err)
	assert.Equal(t, created.TaxCode, got.TaxCode)
}

func TestCreateTaxValidation(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTaxRequest{
		IGST:      18,
		CreatedBy: "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrValidation))

	_, err = svc.Create(context.Background(), CreateTaxRequest{
		TaxDesc:   "GST 18%",
		IGST:      -1,
		CreatedBy: "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrValidation))

	assert.Empty(t, repo.taxes)
}

func TestGetTaxNotFound(t *testing.T) {
	svc := NewService(newMockRepository())
	_, err := svc.Get(context.Background(), 99)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestUpdateTaxPartial(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateTaxRequest{
		TaxDesc: "GST 12%", IGST: 12, CGST: 6, SGST: 6, CreatedBy: "admin",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.TaxCode, UpdateTaxRequest{
		TaxDesc: ptr("GST 12% revised"),
	})
	require.NoError(t, err)
	assert.Equal(t, "GST 12% revised", updated.TaxDesc)
	assert.Equal(t, 12.0, updated.IGST)
	require.NotNil(t, updated.ModifiedDate)
}

func TestUpdateTaxEmptyPatchStampsModifiedDate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateTaxRequest{
		TaxDesc: "GST 5%", IGST: 5, CGST: 2.5, SGST: 2.5, CreatedBy: "admin",
	})
	require.NoError(t, err)
	require.Nil(t, created.ModifiedDate)

	updated, err := svc.Update(context.Background(), created.TaxCode, UpdateTaxRequest{})
	require.NoError(t, err)
	assert.Equal(t, "GST 5%", updated.TaxDesc)
	assert.NotNil(t, updated.ModifiedDate)
}

func TestUpdateTaxNotFound(t *testing.T) {
	svc := NewService(newMockRepository())
	_, err := svc.Update(context.Background(), 42, UpdateTaxRequest{TaxDesc: ptr("x")})
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestListTaxesPagination(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), CreateTaxRequest{
			TaxDesc: "rate", IGST: float64(i), CreatedBy: "admin",
		})
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), shared.ListParams{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].TaxCode)
	assert.Equal(t, int64(4), page[1].TaxCode)

	empty, err := svc.List(context.Background(), shared.ListParams{Skip: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
