package impex

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

type ImportErrorKind int

const (
	// ErrorIO covers filesystem and stream level failures.
	ErrorIO ImportErrorKind = iota
	// ErrorDecode covers codec level failures in an otherwise readable file.
	ErrorDecode
	// ErrorUnsupportedFormat covers unrecognized extensions and container
	// level errors with no more specific translation.
	ErrorUnsupportedFormat
	// ErrorNoContent means the container parsed fine but held no usable
	// layers or frames.
	ErrorNoContent
)

func (s ImportErrorKind) String() string {
	switch s {
	case ErrorIO:
		return "I/O error"
	case ErrorDecode:
		return "decode error"
	case ErrorUnsupportedFormat:
		return "unsupported format"
	case ErrorNoContent:
		return "no content"
	}
	return "unknown"
}

// ImportError is the single error type surfaced by image imports. Every
// failure from a delegate loader is re-tagged into one of the four kinds;
// nothing is swallowed or retried.
type ImportError struct {
	kind   ImportErrorKind
	format string
	cause  error
}

func (s *ImportError) Kind() ImportErrorKind {
	return s.kind
}

// Format names the codec a decode failure came from. Empty for the
// other kinds.
func (s *ImportError) Format() string {
	return s.format
}

func (s *ImportError) Error() string {
	switch {
	case s.cause != nil && s.format != "":
		return fmt.Sprintf("image import: %s (%s): %s", s.kind, s.format, s.cause)
	case s.cause != nil:
		return fmt.Sprintf("image import: %s: %s", s.kind, s.cause)
	default:
		return fmt.Sprintf("image import: %s", s.kind)
	}
}

func (s *ImportError) Unwrap() error {
	return s.cause
}

// ErrorKindOf resolves the import error kind of err, or ok=false if err
// did not come from an import.
func ErrorKindOf(err error) (kind ImportErrorKind, ok bool) {
	var importError *ImportError
	if errors.As(err, &importError) {
		return importError.Kind(), true
	}
	return 0, false
}

// One explicit constructor per lower level failure kind. Loaders never
// build ImportError values directly; this keeps the translation rules in
// one place.

func ioError(err error) *ImportError {
	return &ImportError{kind: ErrorIO, cause: err}
}

func decodeError(format string, err error) *ImportError {
	return &ImportError{kind: ErrorDecode, format: format, cause: err}
}

func unsupportedFormatError() *ImportError {
	return &ImportError{kind: ErrorUnsupportedFormat}
}

func noContentError() *ImportError {
	return &ImportError{kind: ErrorNoContent}
}

// translateZipError maps a zip container failure into the import
// taxonomy. The container's I/O sub-case stays an I/O error; every other
// zip level case collapses to unsupported format and the original detail
// is dropped at this boundary.
func translateZipError(err error) *ImportError {
	switch {
	case errors.Is(err, zip.ErrFormat),
		errors.Is(err, zip.ErrAlgorithm),
		errors.Is(err, zip.ErrChecksum):
		return unsupportedFormatError()
	case isStreamError(err):
		return ioError(err)
	default:
		return unsupportedFormatError()
	}
}

func isStreamError(err error) bool {
	var pathError *fs.PathError
	return errors.As(err, &pathError) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF)
}
