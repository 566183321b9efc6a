package featurestore

// Logger is the minimal logging surface the client reports through.
type Logger interface {
	Printf(format string, v ...interface{})
}

// emptyLogger discards everything, the default until WithLogger is used.
type emptyLogger struct{}

func (emptyLogger) Printf(format string, v ...interface{}) {}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(format string, v ...interface{})

func (f LoggerFunc) Printf(format string, v ...interface{}) {
	f(format, v...)
}
