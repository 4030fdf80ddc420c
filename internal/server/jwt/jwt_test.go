package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestService_RoundTrip(t *testing.T) {
	s := NewService(testSecret, time.Hour)

	token, expiresIn, err := s.GenerateAccessToken("u1", "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 3600, expiresIn)

	claims, err := s.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestService_Rejects(t *testing.T) {
	s := NewService(testSecret, time.Hour)
	valid, _, err := s.GenerateAccessToken("u1", "alice")
	require.NoError(t, err)

	expired := NewService(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.GenerateAccessToken("u1", "alice")
	require.NoError(t, err)

	forged, _, err := NewService("another-secret-another-secret-xx", time.Hour).GenerateAccessToken("u1", "alice")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: valid + "x"},
		{name: "expired", token: old},
		{name: "other secret", token: forged},
		{name: "alg none", token: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ValidateAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
