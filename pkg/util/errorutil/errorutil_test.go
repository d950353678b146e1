package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"validation", NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"unavailable", fmt.Errorf("%w: upstream returned 502", ErrDataUnavailable), "DATA_UNAVAILABLE", http.StatusServiceUnavailable},
		{"no rows", fmt.Errorf("load: %w", pgx.ErrNoRows), "NOT_FOUND", http.StatusNotFound},
		{"wrapped domain", fmt.Errorf("ctx: %w", NewUnauthorized("nope")), "UNAUTHORIZED", http.StatusUnauthorized},
		{"other", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			de := ToDomainError(tc.err)
			assert.Equal(t, tc.code, de.Code)
			assert.Equal(t, tc.status, de.HTTPStatus)
		})
	}

	assert.Nil(t, ToDomainError(nil))
}

func TestDataUnavailableUnwraps(t *testing.T) {
	cause := fmt.Errorf("%w: dial tcp", ErrDataUnavailable)
	err := NewDataUnavailable(cause)
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Contains(t, err.Error(), "dial tcp")
}
