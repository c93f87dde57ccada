package main

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/elimu/core/user"
	localdb "github.com/trezcool/elimu/storage/local"
)

var usrSvc *user.Service

func setup(t *testing.T) *commandLine {
	store, err := localdb.Open("")
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	usrSvc = user.NewService(localdb.NewUserRepository(store))

	// lazy handle, never connected; migrate tests stub the goose call
	db, err := sqlx.Open("postgres", "host=localhost")
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	return &commandLine{
		db:     db,
		usrSvc: usrSvc,
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	extra   interface{}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	var gotCommand string
	var gotArgs []string
	gooseRunFunc = func(command string, db *sql.DB, fsys fs.FS, dir string, args ...string) error {
		gotCommand = command
		gotArgs = args
		return nil
	}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "migrate without subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "up-to forwards args", args: []string{"migrate", "up-to", "2"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			if gotCommand != tt.args[1] {
				t.Errorf("cli.run() forwarded command = %s, want %s", gotCommand, tt.args[1])
			}
			if len(tt.args) > 2 && (len(gotArgs) == 0 || gotArgs[0] != tt.args[2]) {
				t.Errorf("cli.run() forwarded args = %v, want %v", gotArgs, tt.args[2:])
			}
		})
	}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "name but no email", args: []string{"adduser", "-name", "X"}, wantErr: errHelp},
		{name: "bad role", args: []string{"adduser", "-name", "X", "-email", "x@college.edu", "-role", "janitor"}, wantErr: errHelp},
		{name: "no password", args: []string{"adduser", "-name", "X", "-email", "x@college.edu"}, wantErr: errHelp},
		{name: "ok", args: []string{"adduser", "-name", "New Guy", "-email", "new@college.edu", "-role", "faculty"}, extra: extra{pwd: "pwd123"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				users, err := usrSvc.QueryAll(context.Background())
				if err != nil {
					t.Fatalf("QueryAll() failed: %v", err)
				}
				found := false
				for _, usr := range users {
					if usr.Email == "new@college.edu" && usr.Role == user.RoleFaculty {
						found = true
					}
				}
				if !found {
					t.Error("failed to create user")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
