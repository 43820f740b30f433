package claims

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/GreicodexJM/MyREST/internal/errs"
)

// Verify checks token's HS256 signature against secret and returns its
// claims as a Map. Returns *errs.Error with ErrKindAuthenticationInvalid on
// a bad signature, expired token, or malformed payload.
func Verify(secret, token string) (Map, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindAuthenticationInvalid, "invalid bearer token", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errs.New(errs.ErrKindAuthenticationInvalid, "invalid bearer token")
	}

	out := make(Map, len(mapClaims))
	for k, v := range mapClaims {
		out[k] = v
	}
	return out, nil
}
