package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testParams облегченные параметры, чтобы тесты не тратили 64MB на вызов
var testParams = Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 32}

func fixedSalt(b byte) string {
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = b
	}
	return base64.StdEncoding.EncodeToString(salt)
}

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt()
	require.NoError(t, err)
	b, err := GenerateSalt()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, SaltSize)
	assert.NotEqual(t, a, b)
}

func TestDeriveAuthKey(t *testing.T) {
	tests := []struct {
		name     string
		password string
		username string
		salt     string
		errMsg   string
		wantErr  bool
	}{
		{name: "ok", password: "legday123", username: "alice", salt: fixedSalt(1)},
		{name: "empty password", username: "alice", salt: fixedSalt(1), wantErr: true, errMsg: "master password cannot be empty"},
		{name: "empty username", password: "legday123", salt: fixedSalt(1), wantErr: true, errMsg: "username cannot be empty"},
		{name: "bad base64", password: "legday123", username: "alice", salt: "not base64!", wantErr: true, errMsg: "failed to decode salt"},
		{name: "short salt", password: "legday123", username: "alice", salt: base64.StdEncoding.EncodeToString([]byte("short")), wantErr: true, errMsg: "salt must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveAuthKey(tt.password, tt.username, tt.salt, testParams)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, int(testParams.KeyLen))
		})
	}
}

func TestDeriveAuthKey_Inputs(t *testing.T) {
	base, err := DeriveAuthKey("legday123", "alice", fixedSalt(1), testParams)
	require.NoError(t, err)

	same, err := DeriveAuthKey("legday123", "alice", fixedSalt(1), testParams)
	require.NoError(t, err)
	assert.Equal(t, base, same)

	otherSalt, err := DeriveAuthKey("legday123", "alice", fixedSalt(2), testParams)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSalt)

	otherUser, err := DeriveAuthKey("legday123", "bob", fixedSalt(1), testParams)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherUser)
}

func TestHashAuthKey(t *testing.T) {
	// SHA256("test")
	hash, err := HashAuthKey([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hash)

	_, err = HashAuthKey(nil)
	assert.Error(t, err)
}

func TestCompareHash(t *testing.T) {
	hash, err := HashAuthKey([]byte("my_secret_auth_key"))
	require.NoError(t, err)

	assert.NoError(t, CompareHash(hash, hash))
	assert.ErrorIs(t, CompareHash("deadbeef", hash), ErrAuthKeyMismatch)
	assert.ErrorIs(t, CompareHash("", hash), ErrAuthKeyMismatch)
	assert.ErrorIs(t, CompareHash(hash, ""), ErrAuthKeyMismatch)
}
