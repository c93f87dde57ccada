package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core"
)

type memRepo struct {
	users []User
}

func (repo *memRepo) QueryAllUsers(context.Context) ([]User, error) { return repo.users, nil }

func (repo *memRepo) CreateUser(_ context.Context, usr User) (User, error) {
	max := 0
	for _, u := range repo.users {
		if u.ID > max {
			max = u.ID
		}
	}
	usr.ID = max + 1
	repo.users = append(repo.users, usr)
	return usr, nil
}

func (repo *memRepo) DeleteUser(_ context.Context, id int) error {
	kept := repo.users[:0]
	for _, u := range repo.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	repo.users = kept
	return nil
}

func newTestService() (*Service, *memRepo) {
	repo := &memRepo{users: Fixtures()}
	return NewService(repo), repo
}

func Test_Service_Authenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ident, err := svc.Authenticate(ctx, "bob@student.edu", "student123")
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: 3, Name: "Bob Student", Email: "bob@student.edu", Role: RoleStudent}, ident)

	// both email and password are matched verbatim
	_, err = svc.Authenticate(ctx, "BOB@student.edu", "student123")
	assert.Equal(t, ErrInvalidCredentials, err)
	_, err = svc.Authenticate(ctx, " bob@student.edu ", "student123")
	assert.Equal(t, ErrInvalidCredentials, err)
	_, err = svc.Authenticate(ctx, "bob@student.edu", "STUDENT123")
	assert.Equal(t, ErrInvalidCredentials, err)
	_, err = svc.Authenticate(ctx, "nobody@student.edu", "student123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func Test_Service_AuthenticateAdmin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ident, err := svc.AuthenticateAdmin(ctx, "admin123")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, ident.Role)
	assert.Equal(t, 1, ident.ID)

	// a non-admin password never matches, even when correct for that user
	_, err = svc.AuthenticateAdmin(ctx, "faculty123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func Test_Service_Create(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	usr, err := svc.Create(ctx, NewUser{Name: "New Guy", Email: "new@college.edu", Password: "pwd123", Role: RoleFaculty})
	require.NoError(t, err)
	assert.Equal(t, 4, usr.ID)
	assert.Len(t, repo.users, 4)

	_, err = svc.Create(ctx, NewUser{Name: "Dup", Email: "new@college.edu", Password: "x", Role: RoleStudent})
	require.Error(t, err)
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok, "want *core.ValidationError, got %T", err)
	assert.Equal(t, ErrEmailExists.Error(), vErr.Error())
}
