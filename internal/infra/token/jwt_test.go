package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark47B/iam-service/internal/domain/entity"
)

func TestGenerateParse(t *testing.T) {
	actor := entity.ActingUser{ID: "u1", Email: "a@x.com", TenantID: "t1"}

	signed, err := Generate(actor, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, actor, claims.ActingUser())
}

func TestParse_Invalid(t *testing.T) {
	actor := entity.ActingUser{ID: "u1", Email: "a@x.com", TenantID: "t1"}

	expired, err := Generate(actor, "secret", -time.Minute)
	require.NoError(t, err)

	noTenant, err := Generate(entity.ActingUser{ID: "u1", Email: "a@x.com"}, "secret", time.Hour)
	require.NoError(t, err)

	noEmail, err := Generate(entity.ActingUser{ID: "u1", TenantID: "t1"}, "secret", time.Hour)
	require.NoError(t, err)

	other, err := Generate(actor, "other-secret", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1", TenantID: "t1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":      expired,
		"no tenant":    noTenant,
		"no email":     noEmail,
		"wrong secret": other,
		"alg none":     none,
		"garbage":      "not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tok, "secret")
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
