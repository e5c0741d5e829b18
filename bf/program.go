package bf

import (
	"maps"
	"strings"
)

// Program is a compiled token stream with its jump table. It is never
// modified after Compile returns, so one Program can back any number of
// interpreters.
type Program struct {
	tokens []Token
	jumps  JumpTable
}

// Compile lexes source and pairs its brackets. Unbalanced brackets fail with
// a *SyntaxError wrapping ErrUnmatchedLoopClose or ErrUnmatchedLoopOpen.
func Compile(source string) (*Program, error) {
	tokens := Lex(source)
	jumps, err := BuildJumpTable(tokens)
	if err != nil {
		return nil, err
	}
	return &Program{tokens: tokens, jumps: jumps}, nil
}

// Len reports the number of tokens.
func (p *Program) Len() int {
	return len(p.tokens)
}

// Tokens returns a copy of the token stream.
func (p *Program) Tokens() []Token {
	return append([]Token(nil), p.tokens...)
}

// Jumps returns a copy of the jump table.
func (p *Program) Jumps() JumpTable {
	return maps.Clone(p.jumps)
}

// String renders the program as operator-only source.
func (p *Program) String() string {
	var b strings.Builder
	b.Grow(len(p.tokens))
	for _, tok := range p.tokens {
		b.WriteRune(tok.Kind.Symbol())
	}
	return b.String()
}
