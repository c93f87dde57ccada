// Package logsvc provides the logging backends.
package logsvc

import (
	"log"

	"github.com/trezcool/elimu/core"
)

// StdLogger logs everything to a standard library logger.
type StdLogger struct {
	std *log.Logger
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	return &StdLogger{std: std}
}

func (l StdLogger) print(level, msg string, args []interface{}) {
	l.std.Println(level + " " + msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l StdLogger) Debug(msg string, args ...interface{})   { l.print("DEBUG", msg, args) }
func (l StdLogger) Info(msg string, args ...interface{})    { l.print("INFO", msg, args) }
func (l StdLogger) Warning(msg string, args ...interface{}) { l.print("WARNING", msg, args) }
func (l StdLogger) Error(msg string, args ...interface{})   { l.print("ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
