package lib

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyIdentityToken(t *testing.T) {
	token, err := SignIdentityToken("secreto", "auth0|abc123", "ana@ejemplo.com", "Ana Torres")
	require.NoError(t, err)

	claims, err := VerifyJWT(token, "secreto")
	require.NoError(t, err)

	identity, ok := IdentityFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, "auth0|abc123", identity.Subject)
	assert.Equal(t, "ana@ejemplo.com", identity.Email)
	assert.Equal(t, "Ana Torres", identity.Name)
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, err := SignIdentityToken("secreto", "auth0|abc123", "", "")
	require.NoError(t, err)

	_, err = VerifyJWT(token, "otro-secreto")
	assert.Error(t, err)
}

func TestVerifyJWTGarbage(t *testing.T) {
	_, err := VerifyJWT("no-es-un-token", "secreto")
	assert.Error(t, err)
}

func TestIdentityFromClaimsRequiresSubject(t *testing.T) {
	_, ok := IdentityFromClaims(jwt.MapClaims{"email": "ana@ejemplo.com"})
	assert.False(t, ok)

	_, ok = IdentityFromClaims(jwt.MapClaims{"sub": ""})
	assert.False(t, ok)
}
