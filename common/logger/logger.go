package logger

import (
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	Error *log.Logger
	Warn  *log.Logger
	Info  *log.Logger
	Debug *log.Logger
	Trace *log.Logger
)

const loggerFlags = log.Ldate | log.Ltime | log.Lshortfile

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func newLogger(out io.Writer, level LogLevel, enabledLevel LogLevel, prefix string) *log.Logger {
	if enabledLevel < level {
		out = ioutil.Discard
	}
	return log.New(out, prefix, loggerFlags)
}

func initialize(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	Error = newLogger(errOut, ERROR, logLevel, "ERROR: ")
	Warn = newLogger(out, WARN, logLevel, "WARN:  ")
	Info = newLogger(out, INFO, logLevel, "INFO:  ")
	Debug = newLogger(out, DEBUG, logLevel, "DEBUG: ")
	Trace = newLogger(out, TRACE, logLevel, "TRACE: ")
}

func init() {
	// Silent until Initialize is called
	initialize(LogLevel(-1), ioutil.Discard, ioutil.Discard)
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	initialize(logLevel, os.Stdout, os.Stderr)
}
