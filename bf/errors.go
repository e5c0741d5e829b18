package bf

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedLoopClose = errors.New("unmatched loop-close")
	ErrUnmatchedLoopOpen  = errors.New("unmatched loop-open")
	ErrInput              = errors.New("could not read input")
	ErrStepQuotaExceeded  = errors.New("step quota exceeded")
)

// SyntaxError reports a bracket that has no partner. Compilation stops at the
// first one found.
type SyntaxError struct {
	Err   error
	Token Token
	Index int
}

func (e *SyntaxError) Error() string {
	return e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// RuntimeError is a fatal failure while executing a token. Pos is the source
// position of that token.
type RuntimeError struct {
	Kind Kind
	Pos  int
	Err  error
}

func (e *RuntimeError) Error() string {
	if e.Kind == Input {
		return fmt.Sprintf("%s: failed on %c at pos %d: %v", ErrInput, e.Kind.Symbol(), e.Pos, e.Err)
	}
	return fmt.Sprintf("%s at pos %d: %v", e.Kind, e.Pos, e.Err)
}

// Is reports ErrInput for input failures so callers need not inspect Kind.
func (e *RuntimeError) Is(target error) bool {
	return target == ErrInput && e.Kind == Input
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
