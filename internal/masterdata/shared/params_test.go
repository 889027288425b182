package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	p := ListParams{}.Normalize()
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestNormalizeClampsNegativeSkip(t *testing.T) {
	p := ListParams{Skip: -5, Limit: 10}.Normalize()
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 10, p.Limit)
}

func TestNormalizeCapsLimit(t *testing.T) {
	p := ListParams{Limit: 5000}.Normalize()
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	p := ListParams{Skip: 200, Limit: 50}.Normalize()
	assert.Equal(t, 200, p.Skip)
	assert.Equal(t, 50, p.Limit)
}

func TestParseListParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/taxes?skip=40&limit=20", nil)
	p := ParseListParams(r)
	assert.Equal(t, 40, p.Skip)
	assert.Equal(t, 20, p.Limit)
}

func TestParseListParamsMalformedFallsBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/taxes?skip=abc&limit=xyz", nil)
	p := ParseListParams(r)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestParseBoolFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?is_active=true", nil)
	v := ParseBoolFilter(r, "is_active")
	require.NotNil(t, v)
	assert.True(t, *v)

	r = httptest.NewRequest("GET", "/products?is_active=false", nil)
	v = ParseBoolFilter(r, "is_active")
	require.NotNil(t, v)
	assert.False(t, *v)

	r = httptest.NewRequest("GET", "/products", nil)
	assert.Nil(t, ParseBoolFilter(r, "is_active"))
}

func TestParseIDFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/generics?category_id=7", nil)
	v := ParseIDFilter(r, "category_id")
	require.NotNil(t, v)
	assert.Equal(t, int64(7), *v)

	r = httptest.NewRequest("GET", "/generics?category_id=seven", nil)
	assert.Nil(t, ParseIDFilter(r, "category_id"))

	r = httptest.NewRequest("GET", "/generics", nil)
	assert.Nil(t, ParseIDFilter(r, "category_id"))
}
