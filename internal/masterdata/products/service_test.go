package products

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
	products map[int64]*Product
	nextID   int64

	createError error
	deleteError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: make(map[int64]*Product), nextID: 1}
}

func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, m)
}

func (m *mockRepository) List(ctx context.Context, params ListProductsParams) ([]Product, error) {
	list := []Product{}
	for id := int64(1); id < m.nextID; id++ {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		if params.IsActive != nil && p.IsActive != *params.IsActive {
			continue
		}
		list = append(list, *p)
	}
	return list, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Product, error) {
	p, ok := m.products[id]
	if !ok {
		return Product{}, shared.ErrNotFound
	}
	return *p, nil
}

func (m *mockRepository) Create(ctx context.Context, p Product) (Product, error) {
	if m.createError != nil {
		return Product{}, m.createError
	}
	p.ProdCode = m.nextID
	p.CreatedDate = time.Now()
	m.products[p.ProdCode] = &p
	m.nextID++
	return p, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, patch UpdateProductRequest) error {
	p, ok := m.products[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := time.Now()
	p.ModifiedDate = &now
	if patch.ProdName != nil {
		p.ProdName = *patch.ProdName
	}
	if patch.MRP != nil {
		p.MRP = *patch.MRP
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.InActiveFrom != nil {
		p.InActiveFrom = patch.InActiveFrom
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	if _, ok := m.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

func validCreateRequest() CreateProductRequest {
	return CreateProductRequest{
		ProdName:     "Dolo 650",
		Packing:      "15 tablets",
		PurUnit:      "BOX",
		SalUnit:      "STRIP",
		ProdTypeCode: 1,
		MfrCode:      1,
		MRP:          32.50,
		PurTaxCode:   1,
		SalTaxCode:   1,
		SchTypeCode:  1,
		CreatedBy:    "admin",
	}
}

func TestCreateProductDefaultsActive(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, 32.50, created.MRP)
}

func TestCreateProductExplicitInactive(t *testing.T) {
	svc := NewService(newMockRepository())

	req := validCreateRequest()
	req.IsActive = ptr(false)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestCreateProductNegativeMRP(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	req := validCreateRequest()
	req.MRP = -1
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrValidation))
	assert.Empty(t, repo.products)
}

func TestCreateProductMissingReferences(t *testing.T) {
	svc := NewService(newMockRepository())

	req := validCreateRequest()
	req.MfrCode = 0
	_, err := svc.Create(context.Background(), req)
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestCreateProductConstraintSurfaces(t *testing.T) {
	repo := newMockRepository()
	repo.createError = shared.ErrConstraint
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrConstraint))
}

func TestListProductsActiveFilter(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	inactive := validCreateRequest()
	inactive.ProdName = "Old Stock"
	inactive.IsActive = ptr(false)
	_, err = svc.Create(context.Background(), inactive)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), ListProductsParams{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(context.Background(), ListProductsParams{IsActive: ptr(true)})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Dolo 650", active[0].ProdName)

	dormant, err := svc.List(context.Background(), ListProductsParams{IsActive: ptr(false)})
	require.NoError(t, err)
	require.Len(t, dormant, 1)
	assert.Equal(t, "Old Stock", dormant[0].ProdName)
}

func TestUpdateProductDeactivation(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), created.ProdCode, UpdateProductRequest{
		IsActive:     ptr(false),
		InActiveFrom: &from,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.InActiveFrom)
	assert.True(t, from.Equal(*updated.InActiveFrom))
}

func TestDeleteProduct(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ProdCode))
	_, err = svc.Get(context.Background(), created.ProdCode)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	err = svc.Delete(context.Background(), created.ProdCode)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestDeleteProductConstraintSurfaces(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	repo.deleteError = shared.ErrConstraint
	err = svc.Delete(context.Background(), created.ProdCode)
	assert.True(t, errors.Is(err, shared.ErrConstraint))
}
