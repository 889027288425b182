package generics

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
	generics map[int64]*Generic
	nextID   int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{generics: make(map[int64]*Generic), nextID: 1}
}

func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, m)
}

func (m *mockRepository) List(ctx context.Context, params ListGenericsParams) ([]Generic, error) {
	list := []Generic{}
	for id := int64(1); id < m.nextID; id++ {
		g, ok := m.generics[id]
		if !ok {
			continue
		}
		if params.CategoryID != nil {
			if g.ProdCatCode == nil || *g.ProdCatCode != *params.CategoryID {
				continue
			}
		}
		list = append(list, *g)
	}
	return list, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Generic, error) {
	g, ok := m.generics[id]
	if !ok {
		return Generic{}, shared.ErrNotFound
	}
	return *g, nil
}

func (m *mockRepository) Create(ctx context.Context, g Generic) (Generic, error) {
	g.GenericCode = m.nextID
	g.CreatedDate = time.Now()
	m.generics[g.GenericCode] = &g
	m.nextID++
	return g, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, patch UpdateGenericRequest) error {
	g, ok := m.generics[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := time.Now()
	g.ModifiedDate = &now
	if patch.GenericName != nil {
		g.GenericName = *patch.GenericName
	}
	if patch.ProdCatCode != nil {
		g.ProdCatCode = patch.ProdCatCode
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestCreateGenericWithoutCategory(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), CreateGenericRequest{
		GenericName: "Paracetamol",
		CreatedBy:   "admin",
	})
	require.NoError(t, err)
	assert.Nil(t, created.ProdCatCode)
}

func TestListGenericsCategoryFilter(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), CreateGenericRequest{
		GenericName: "Paracetamol", ProdCatCode: ptr(int64(1)), CreatedBy: "admin",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateGenericRequest{
		GenericName: "Ibuprofen", ProdCatCode: ptr(int64(2)), CreatedBy: "admin",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateGenericRequest{
		GenericName: "Amoxicillin", CreatedBy: "admin",
	})
	require.NoError(t, err)

	all, err := svc.List(context.Background(), ListGenericsParams{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.List(context.Background(), ListGenericsParams{CategoryID: ptr(int64(1))})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Paracetamol", filtered[0].GenericName)

	// Uncategorized generics never match a category filter.
	none, err := svc.List(context.Background(), ListGenericsParams{CategoryID: ptr(int64(99))})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateGenericAssignCategory(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), CreateGenericRequest{
		GenericName: "Cetirizine", CreatedBy: "admin",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.GenericCode, UpdateGenericRequest{
		ProdCatCode: ptr(int64(3)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ProdCatCode)
	assert.Equal(t, int64(3), *updated.ProdCatCode)
	assert.Equal(t, "Cetirizine", updated.GenericName)
}

func TestCreateGenericValidation(t *testing.T) {
	svc := NewService(newMockRepository())
	_, err := svc.Create(context.Background(), CreateGenericRequest{CreatedBy: "admin"})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}
