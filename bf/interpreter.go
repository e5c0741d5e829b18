package bf

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Config controls where a run reads and writes and how long it may go.
type Config struct {
	Input  io.Reader
	Output io.Writer
	// StepQuota caps the number of executed tokens. Zero means no cap.
	StepQuota int
}

// ctxCheckInterval is how many steps Run takes between context polls.
const ctxCheckInterval = 1024

type flusher interface {
	Flush() error
}

// Interpreter executes one Program against its own tape. It is not safe for
// concurrent use.
type Interpreter struct {
	tokens []Token
	jumps  JumpTable

	pc    int
	steps int
	tape  *Tape

	in    io.Reader
	out   io.Writer
	quota int
	buf   [1]byte
}

// NewInterpreter prepares a run of program. A nil Input behaves as an empty
// stream and a nil Output discards everything.
func NewInterpreter(program *Program, cfg Config) *Interpreter {
	if cfg.Input == nil {
		cfg.Input = strings.NewReader("")
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	return &Interpreter{
		tokens: program.tokens,
		jumps:  program.jumps,
		tape:   NewTape(),
		in:     cfg.Input,
		out:    cfg.Output,
		quota:  cfg.StepQuota,
	}
}

// Done reports whether the program cursor has run past the last token.
func (it *Interpreter) Done() bool {
	return it.pc >= len(it.tokens)
}

// PC returns the index of the next token to execute.
func (it *Interpreter) PC() int {
	return it.pc
}

// Steps returns how many tokens have been executed.
func (it *Interpreter) Steps() int {
	return it.steps
}

// Tape exposes the interpreter's memory.
func (it *Interpreter) Tape() *Tape {
	return it.tape
}

// Step executes the token under the program cursor and advances past it.
// Calling Step after Done is a no-op.
func (it *Interpreter) Step() error {
	if it.Done() {
		return nil
	}
	if it.quota > 0 && it.steps >= it.quota {
		return fmt.Errorf("%w (%d)", ErrStepQuotaExceeded, it.quota)
	}
	it.steps++

	tok := it.tokens[it.pc]
	switch tok.Kind {
	case Increment:
		it.tape.Inc()
	case Decrement:
		it.tape.Dec()
	case MoveRight:
		it.tape.Right()
	case MoveLeft:
		it.tape.Left()
	case Print:
		it.buf[0] = it.tape.Get()
		if _, err := it.out.Write(it.buf[:]); err != nil {
			return &RuntimeError{Kind: tok.Kind, Pos: tok.Pos, Err: err}
		}
	case Input:
		if err := it.flush(); err != nil {
			return &RuntimeError{Kind: tok.Kind, Pos: tok.Pos, Err: err}
		}
		if _, err := io.ReadFull(it.in, it.buf[:]); err != nil {
			return &RuntimeError{Kind: tok.Kind, Pos: tok.Pos, Err: err}
		}
		it.tape.Set(it.buf[0])
	case LoopOpen:
		if it.tape.Get() == 0 {
			it.pc = it.jumps[it.pc]
		}
	case LoopClose:
		if it.tape.Get() != 0 {
			it.pc = it.jumps[it.pc]
		}
	}
	// The jump target is the partner bracket itself; stepping past it here
	// is what enters or leaves the loop body.
	it.pc++
	return nil
}

// Run steps until the program finishes, a step fails, or ctx is done.
// Output is flushed before returning.
func (it *Interpreter) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := it.run(ctx)
	if ferr := it.flush(); err == nil && ferr != nil {
		return fmt.Errorf("flush output: %w", ferr)
	}
	return err
}

func (it *Interpreter) run(ctx context.Context) error {
	for !it.Done() {
		if it.steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := it.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) flush() error {
	if f, ok := it.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Run compiles source and executes it with cfg.
func Run(ctx context.Context, source string, cfg Config) error {
	program, err := Compile(source)
	if err != nil {
		return err
	}
	return NewInterpreter(program, cfg).Run(ctx)
}
