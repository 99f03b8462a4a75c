// file: internals/features/admin/users/model/user_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("s3cret-portal-pass"))

	assert.NotEmpty(t, u.UserPasswordHash)
	assert.NotContains(t, u.UserPasswordHash, "s3cret")

	assert.True(t, u.CheckPassword("s3cret-portal-pass"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.False(t, u.CheckPassword(""))
}
