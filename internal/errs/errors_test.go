package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndWrap(t *testing.T) {
	e := New(ErrKindNotFound, "missing")
	assert.Equal(t, "[not_found] missing", e.Error())
	assert.Nil(t, e.Unwrap())

	cause := errors.New("driver exploded")
	wrapped := Wrap(ErrKindQueryFailed, "query failed", cause)
	assert.Equal(t, "[query_failed] query failed: driver exploded", wrapped.Error())
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"not found", New(ErrKindNotFound, "x"), IsNotFound},
		{"timeout", New(ErrKindTimeout, "x"), IsTimeout},
		{"connection failed", New(ErrKindConnectionFailed, "x"), IsConnectionFailed},
		{"query failed", New(ErrKindQueryFailed, "x"), IsQueryFailed},
		{"invalid input", New(ErrKindInvalidInput, "x"), IsInvalidInput},
		{"permission denied", New(ErrKindPermissionDenied, "x"), IsPermissionDenied},
		{"auth missing", New(ErrKindAuthenticationMissing, "x"), IsAuthenticationMissing},
		{"auth invalid", New(ErrKindAuthenticationInvalid, "x"), IsAuthenticationInvalid},
		{"conflict", New(ErrKindConflict, "x"), IsConflict},
		{"catalog error", New(ErrKindCatalogError, "x"), IsCatalogError},
		{"policy load error", New(ErrKindPolicyLoadError, "x"), IsPolicyLoadError},
		{"composite key error", New(ErrKindCompositeKeyError, "x"), IsCompositeKeyError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want(tc.err))
		})
	}
}

func TestPredicates_NonMatchingKindAndPlainError(t *testing.T) {
	assert.False(t, IsNotFound(New(ErrKindTimeout, "x")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{New(ErrKindInvalidInput, "x"), http.StatusBadRequest},
		{New(ErrKindCompositeKeyError, "x"), http.StatusBadRequest},
		{New(ErrKindConflict, "x"), http.StatusBadRequest},
		{New(ErrKindAuthenticationMissing, "x"), http.StatusUnauthorized},
		{New(ErrKindAuthenticationInvalid, "x"), http.StatusUnauthorized},
		{New(ErrKindNotFound, "x"), http.StatusNotFound},
		{New(ErrKindPermissionDenied, "x"), http.StatusForbidden},
		{New(ErrKindQueryFailed, "x"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err))
	}
}
