package core

// Logger is implemented by all logging backends.
// Extra args may carry an error, a map of tags or a user identity;
// each backend decides what to do with them.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
