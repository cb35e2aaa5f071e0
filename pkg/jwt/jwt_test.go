package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juvelir/workshop/pkg/jwt"
)

func TestJWT_CreateVerify(t *testing.T) {
	j := jwt.New([]byte("test-secret"))

	token, err := j.Create("UserID", "42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	value, ok, err := j.Verify(token, "UserID")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", value)
}

func TestJWT_VerifyWrongSecret(t *testing.T) {
	token, err := jwt.New([]byte("one-secret")).Create("UserID", "42")
	require.NoError(t, err)

	_, ok, err := jwt.New([]byte("other-secret")).Verify(token, "UserID")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestJWT_VerifyMissingClaim(t *testing.T) {
	j := jwt.New([]byte("test-secret"))

	token, err := j.Create("UserID", "42")
	require.NoError(t, err)

	_, ok, err := j.Verify(token, "SessionID")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWT_VerifyGarbage(t *testing.T) {
	j := jwt.New([]byte("test-secret"))

	_, ok, err := j.Verify("not-a-token", "UserID")
	assert.Error(t, err)
	assert.False(t, ok)
}
