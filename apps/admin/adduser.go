package main

import (
	"context"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/user"
)

// addUser creates a new user.User in the directory.
func (cli *commandLine) addUser(name, email, pwd, role string) error {
	_, err := cli.usrSvc.Create(context.Background(), user.NewUser{
		Name:     core.CleanString(name),
		Email:    core.CleanString(email, true /* lower */),
		Password: pwd,
		Role:     role,
	})
	return err
}
