package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 25, 101)
	assert.Equal(t, 101, p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.PageSize)
	assert.Equal(t, 5, p.TotalPages)
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(0, 0, 50)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}

func TestEnvelopeShape(t *testing.T) {
	env := Envelope{
		Pagination: NewPagination(1, 10, 3),
		Items:      []string{"a", "b", "c"},
	}
	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "total")
	assert.Contains(t, decoded, "page")
	assert.Contains(t, decoded, "page_size")
	assert.Contains(t, decoded, "total_pages")
	assert.Contains(t, decoded, "items")
}
