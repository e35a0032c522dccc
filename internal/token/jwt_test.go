package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_SessionTokenRoundTrip(t *testing.T) {
	manager := NewJWT("test-secret")
	userID := uuid.New()

	tokenString, err := manager.GenerateSessionToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := manager.ParseSessionToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWT_ParseSessionToken_Invalid(t *testing.T) {
	manager := NewJWT("test-secret")

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewJWT("other-secret")
				tokenString, err := other.GenerateSessionToken(uuid.New())
				require.NoError(t, err)
				return tokenString
			},
		},
		{
			name: "wrong signing method",
			token: func(t *testing.T) string {
				tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New()}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tokenString
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, err := manager.ParseSessionToken(tt.token(t))

			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsedID)
		})
	}
}
