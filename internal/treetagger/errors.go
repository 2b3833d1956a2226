package treetagger

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrBinaryNotFound reports that no tagger executable could be located for
// the requested language.
var ErrBinaryNotFound = errors.New("treetagger binary not found")

// LookupError is a construction-time failure: the language/encoding pair is
// not in the model table, or the binary search came up empty. The caller
// must fix configuration; nothing is retried.
type LookupError struct {
	Language string
	Encoding string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("treetagger lookup (language=%s encoding=%s): %v", e.Language, e.Encoding, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ExecError is a call-time failure: the tagger process exited non-zero.
// Stderr carries whatever diagnostics the binary printed.
type ExecError struct {
	Binary   string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("%s: tagger command failed (exit %d)", filepath.Base(e.Binary), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Err }
