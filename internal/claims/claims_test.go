package claims

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"role":       "role",
		"user-id":    "user_id",
		"tenant.org": "tenant_org",
		"a b c":      "a_b_c",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeName(in))
	}
}

func TestBindValue_ScalarsPassThrough(t *testing.T) {
	for _, v := range []any{nil, "x", true, float64(3), int(3)} {
		out, err := BindValue(v)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestBindValue_StructuredSerializesToJSON(t *testing.T) {
	out, err := BindValue(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestVerify_ValidToken(t *testing.T) {
	secret := "topsecret"
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "WRITE_TABLE",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := Verify(secret, signed)
	require.NoError(t, err)
	assert.Equal(t, "WRITE_TABLE", claims["role"])
}

func TestVerify_WrongSecretRejected(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "x"})
	signed, err := tok.SignedString([]byte("secret-a"))
	require.NoError(t, err)

	_, err = Verify("secret-b", signed)
	assert.Error(t, err)
}

func TestVerify_ExpiredTokenRejected(t *testing.T) {
	secret := "topsecret"
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = Verify(secret, signed)
	assert.Error(t, err)
}
