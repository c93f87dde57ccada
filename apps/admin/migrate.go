package main

import (
	"context"

	"github.com/trezcool/goose"

	appfs "github.com/trezcool/elimu/fs"
	"github.com/trezcool/elimu/storage/database"
)

var gooseRunFunc = goose.RunFS // mockable

func (cli *commandLine) migrate(args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db.DB, appfs.FS, "migrations", arguments...)
}

func (cli *commandLine) seed() error {
	return database.Seed(context.Background(), cli.db)
}
