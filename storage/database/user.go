package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/user"
)

type UserRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (repo *UserRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	users := make([]user.User, 0)
	err := repo.db.SelectContext(ctx, &users, `SELECT * FROM "user" ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return users, nil
}

func (repo *UserRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO "user" (name, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		usr.Name, usr.Email, usr.Password, usr.Role,
	).Scan(&usr.ID)
	if err != nil {
		return user.User{}, errors.Wrap(err, "creating user")
	}
	return usr, nil
}

func (repo *UserRepository) DeleteUser(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM "user" WHERE id = $1`, id)
	return errors.Wrap(err, "deleting user")
}
