package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromPassword(t *testing.T) {
	t.Parallel()

	a := New()

	hash, err := a.GenerateFromPassword("password1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	// A fresh salt every time means two hashes of the same password
	// never match
	hash2, err := a.GenerateFromPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPasswd(t *testing.T) {
	t.Parallel()

	a := New()

	hash, err := a.GenerateFromPassword("correct horse battery staple")
	require.NoError(t, err)

	ok, err := a.VerifyPasswd("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswdMalformedHash(t *testing.T) {
	t.Parallel()

	a := New()

	_, err := a.VerifyPasswd("whatever", "not-a-hash")
	assert.ErrorIs(t, err, ErrMalformedHash)

	_, err = a.VerifyPasswd("whatever", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrMalformedHash)
}
