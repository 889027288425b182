package shared

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit applies when the caller does not supply one.
	DefaultLimit = 100
	// MaxLimit caps a single listing page.
	MaxLimit = 1000
)

// ListParams carries offset pagination shared by every listing. Rows are
// always returned in primary-key order, so advancing Skip by Limit walks
// disjoint pages.
type ListParams struct {
	Skip  int
	Limit int
}

// Normalize clamps Skip to zero or more and Limit into [1, MaxLimit],
// substituting DefaultLimit when unset.
func (p ListParams) Normalize() ListParams {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// ParseListParams reads skip and limit query parameters. Malformed values
// fall back to the defaults.
func ParseListParams(r *http.Request) ListParams {
	var p ListParams
	if v := r.URL.Query().Get("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Skip = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Limit = parsed
		}
	}
	return p.Normalize()
}

// ParseBoolFilter reads an optional boolean query parameter, nil when absent.
func ParseBoolFilter(r *http.Request, name string) *bool {
	if v := r.URL.Query().Get(name); v != "" {
		val := v == "true"
		return &val
	}
	return nil
}

// ParseIDFilter reads an optional numeric query parameter, nil when absent
// or malformed.
func ParseIDFilter(r *http.Request, name string) *int64 {
	if v := r.URL.Query().Get(name); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return &parsed
		}
	}
	return nil
}
