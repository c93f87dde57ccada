package localdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core/user"
)

func Test_UserRepository(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)
	repo := NewUserRepository(store)
	ctx := context.Background()

	users, err := repo.QueryAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Fixtures(), users)

	created, err := repo.CreateUser(ctx, user.User{Name: "New Guy", Email: "new@college.edu", Password: "pwd", Role: user.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	require.NoError(t, repo.DeleteUser(ctx, 4))
	require.NoError(t, repo.DeleteUser(ctx, 4)) // idempotent
	users, err = repo.QueryAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
