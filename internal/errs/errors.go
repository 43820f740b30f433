// Package errs provides the unified error type used across the gateway.
//
// Every subsystem (catalog, rls, dbx, handlers, …) wraps its native errors
// into *errs.Error before returning them to callers. Callers use the Is*
// predicates to handle errors without importing driver-specific packages.
//
// Usage:
//
//	// In a driver — wrap native errors:
//	return errs.Wrap(errs.ErrKindTimeout, "query timed out", mysqlErr)
//
//	// In a handler — check error kind:
//	if errs.IsNotFound(err) {
//	    http.Error(w, "not found", http.StatusNotFound)
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error without exposing subsystem-specific codes.
type ErrKind int

const (
	ErrKindUnknown ErrKind = iota
	ErrKindNotFound
	ErrKindConnectionFailed
	ErrKindTimeout
	ErrKindQueryFailed
	ErrKindInvalidInput
	ErrKindPermissionDenied
	ErrKindAuthenticationMissing
	ErrKindAuthenticationInvalid
	ErrKindConflict
	ErrKindCatalogError
	ErrKindPolicyLoadError
	ErrKindCompositeKeyError
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not_found"
	case ErrKindConnectionFailed:
		return "connection_failed"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindQueryFailed:
		return "query_failed"
	case ErrKindInvalidInput:
		return "invalid_input"
	case ErrKindPermissionDenied:
		return "permission_denied"
	case ErrKindAuthenticationMissing:
		return "authentication_missing"
	case ErrKindAuthenticationInvalid:
		return "authentication_invalid"
	case ErrKindConflict:
		return "conflict"
	case ErrKindCatalogError:
		return "catalog_error"
	case ErrKindPolicyLoadError:
		return "policy_load_error"
	case ErrKindCompositeKeyError:
		return "composite_key_error"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every gateway subsystem.
// Handlers inspect it via the Is* predicates below to choose an HTTP status.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error // original driver-level error, preserved for logging
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

func IsNotFound(err error) bool             { return kindOf(err) == ErrKindNotFound }
func IsTimeout(err error) bool              { return kindOf(err) == ErrKindTimeout }
func IsConnectionFailed(err error) bool     { return kindOf(err) == ErrKindConnectionFailed }
func IsQueryFailed(err error) bool          { return kindOf(err) == ErrKindQueryFailed }
func IsInvalidInput(err error) bool         { return kindOf(err) == ErrKindInvalidInput }
func IsPermissionDenied(err error) bool     { return kindOf(err) == ErrKindPermissionDenied }
func IsAuthenticationMissing(err error) bool { return kindOf(err) == ErrKindAuthenticationMissing }
func IsAuthenticationInvalid(err error) bool { return kindOf(err) == ErrKindAuthenticationInvalid }
func IsConflict(err error) bool             { return kindOf(err) == ErrKindConflict }
func IsCatalogError(err error) bool         { return kindOf(err) == ErrKindCatalogError }
func IsPolicyLoadError(err error) bool      { return kindOf(err) == ErrKindPolicyLoadError }
func IsCompositeKeyError(err error) bool    { return kindOf(err) == ErrKindCompositeKeyError }

// kindOf extracts the ErrKind from any error in the chain.
func kindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
