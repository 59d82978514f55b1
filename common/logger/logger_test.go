package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)

	a.Equal(ERROR, StringToLogLevel("error"))
	a.Equal(WARN, StringToLogLevel("WARN"))
	a.Equal(INFO, StringToLogLevel("Info"))
	a.Equal(DEBUG, StringToLogLevel("debug"))
	a.Equal(TRACE, StringToLogLevel("trace"))
	a.Equal(INFO, StringToLogLevel("bogus"))
}

func TestLogLevel_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("ERROR", ERROR.String())
	a.Equal("WARN", WARN.String())
	a.Equal("INFO", INFO.String())
	a.Equal("DEBUG", DEBUG.String())
	a.Equal("TRACE", TRACE.String())
	a.Equal("UNKNOWN", LogLevel(42).String())
}

func TestLoggersAreSilentByDefault(t *testing.T) {
	a := assert.New(t)

	// All loggers exist before Initialize, they just discard output
	a.NotNil(Error)
	a.NotNil(Warn)
	a.NotNil(Info)
	a.NotNil(Debug)
	a.NotNil(Trace)
	Trace.Print("must not panic")
}
