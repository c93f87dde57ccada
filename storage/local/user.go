package localdb

import (
	"context"

	"github.com/trezcool/elimu/core/user"
)

// UserRepository implements user.Repository on the durable local store.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (repo *UserRepository) QueryAllUsers(_ context.Context) ([]user.User, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	users := make([]user.User, 0)
	if err := repo.store.ensure(keyUsers, user.Fixtures(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	users := make([]user.User, 0)
	if err := repo.store.ensure(keyUsers, user.Fixtures(), &users); err != nil {
		return user.User{}, err
	}
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	usr.ID = max + 1
	users = append(users, usr)
	if err := repo.store.put(keyUsers, users); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *UserRepository) DeleteUser(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	users := make([]user.User, 0)
	if err := repo.store.ensure(keyUsers, user.Fixtures(), &users); err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return repo.store.put(keyUsers, kept)
}
