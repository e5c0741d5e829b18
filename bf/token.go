package bf

import "fmt"

// Kind identifies the operation a token performs.
type Kind uint8

const (
	MoveLeft  Kind = iota + 1 // <
	MoveRight                 // >
	Increment                 // +
	Decrement                 // -
	Print                     // .
	Input                     // ,
	LoopOpen                  // [
	LoopClose                 // ]
)

func (k Kind) String() string {
	switch k {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Print:
		return "print"
	case Input:
		return "input"
	case LoopOpen:
		return "loop-open"
	case LoopClose:
		return "loop-close"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Symbol returns the source character for the operation, or 0 for an
// unknown kind.
func (k Kind) Symbol() rune {
	switch k {
	case MoveLeft:
		return '<'
	case MoveRight:
		return '>'
	case Increment:
		return '+'
	case Decrement:
		return '-'
	case Print:
		return '.'
	case Input:
		return ','
	case LoopOpen:
		return '['
	case LoopClose:
		return ']'
	}
	return 0
}

// lookupKind classifies a source character.
func lookupKind(r rune) (Kind, bool) {
	switch r {
	case '<':
		return MoveLeft, true
	case '>':
		return MoveRight, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '.':
		return Print, true
	case ',':
		return Input, true
	case '[':
		return LoopOpen, true
	case ']':
		return LoopClose, true
	}
	return 0, false
}

// Token is a single operator scanned from source.
type Token struct {
	Kind Kind
	// Pos is the 1-based character offset of the operator in the source.
	// Discarded characters count toward it.
	Pos int
}

func (t Token) String() string {
	return fmt.Sprintf("%c@%d", t.Kind.Symbol(), t.Pos)
}
