package errs

import "net/http"

// HTTPStatus maps an error's Kind to the status code the HTTP surface
// reports, per the gateway's failure-semantics table: validation/composite
// key problems are 400, missing/invalid auth is 401, an unknown routine or
// resource is 404, a driver unique/FK violation is 400 with the driver's
// code, everything else is 500.
func HTTPStatus(err error) int {
	switch kindOf(err) {
	case ErrKindInvalidInput, ErrKindCompositeKeyError, ErrKindConflict:
		return http.StatusBadRequest
	case ErrKindAuthenticationMissing, ErrKindAuthenticationInvalid:
		return http.StatusUnauthorized
	case ErrKindNotFound:
		return http.StatusNotFound
	case ErrKindPermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
