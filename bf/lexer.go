package bf

import "unicode/utf8"

type lexer struct {
	input string

	offset int
	pos    int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readRune()
	return l
}

// readRune advances to the next character. pos is the 1-based index of ch;
// it is one past the last character once the input is exhausted.
func (l *lexer) readRune() {
	l.pos++
	if l.offset >= len(l.input) {
		l.ch = 0
		l.offset = len(l.input) + 1
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += w
	l.ch = r
}

func (l *lexer) atEOF() bool {
	return l.offset > len(l.input)
}

// NextToken scans forward to the next operator. It reports false once the
// input is exhausted.
func (l *lexer) NextToken() (Token, bool) {
	for !l.atEOF() {
		kind, ok := lookupKind(l.ch)
		tok := Token{Kind: kind, Pos: l.pos}
		l.readRune()
		if ok {
			return tok, true
		}
	}
	return Token{}, false
}

// Lex scans source into tokens in input order. It never fails; source
// without operators yields no tokens.
func Lex(source string) []Token {
	l := newLexer(source)
	var tokens []Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
