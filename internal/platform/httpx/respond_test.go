package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "Not Found"},
		{"validation", ErrValidation, http.StatusBadRequest, "Validation Failed"},
		{"duplicate", ErrDuplicate, http.StatusConflict, "Duplicate Mapping"},
		{"constraint", ErrConstraint, http.StatusConflict, "Constraint Violation"},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError, "Internal Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var problem ProblemDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tc.title, problem.Title)
			assert.Equal(t, tc.status, problem.Status)
		})
	}
}

func TestRespondErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, fmt.Errorf("update tax: %w", ErrNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pq: password authentication failed"))

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Empty(t, problem.Detail)
}

func TestJSONSetsStatusAndBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"id": 7})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}
