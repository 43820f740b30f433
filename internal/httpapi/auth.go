package httpapi

import (
	"net/http"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/claims"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// authenticate extracts a "Bearer <token>" Authorization header, verifies
// it against cfg's secret, and stashes the resulting claim map on the
// request context. A missing header is only an error when jwtRequired is
// set; a present-but-invalid token is always an error.
func (d *Deps) authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				if d.Config.JWTRequired {
					writeError(w, errs.New(errs.ErrKindAuthenticationMissing, "missing bearer token"))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeError(w, errs.New(errs.ErrKindAuthenticationInvalid, "authorization header must use the Bearer scheme"))
				return
			}

			cl, err := claims.Verify(d.Config.JWTSecret, token)
			if err != nil {
				writeError(w, err)
				return
			}

			r = r.WithContext(withClaims(r.Context(), cl))
			next.ServeHTTP(w, r)
		})
	}
}
