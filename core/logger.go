package core

import "log"

// Logger is the application logging contract.
// Error args may carry arbitrary context values; implementations decide how to render them.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, err error, args ...interface{})
	Enable(enabled bool)
}

type ConsoleLogger struct {
	std     *log.Logger
	enabled bool
}

var _ Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger(std *log.Logger) *ConsoleLogger {
	return &ConsoleLogger{std: std, enabled: true}
}

func (l *ConsoleLogger) Enable(enabled bool) { l.enabled = enabled }

func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	if !l.enabled {
		return
	}
	l.std.Println("INFO: " + msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l *ConsoleLogger) Error(msg string, err error, args ...interface{}) {
	if !l.enabled {
		return
	}
	l.std.Printf("ERROR: %s: %+v\n", msg, err)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}
