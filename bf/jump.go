package bf

// JumpTable maps the token index of each bracket to the index of its partner.
// Both directions of every pair are present.
type JumpTable map[int]int

// BuildJumpTable pairs loop-open and loop-close tokens. It fails on the first
// loop-close with nothing open, or on the innermost loop-open still pending
// after the scan.
func BuildJumpTable(tokens []Token) (JumpTable, error) {
	table := make(JumpTable)
	var stack []int
	for i, tok := range tokens {
		switch tok.Kind {
		case LoopOpen:
			stack = append(stack, i)
		case LoopClose:
			if len(stack) == 0 {
				return nil, &SyntaxError{Err: ErrUnmatchedLoopClose, Token: tok, Index: i}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			table[open] = i
			table[i] = open
		}
	}
	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, &SyntaxError{Err: ErrUnmatchedLoopOpen, Token: tokens[open], Index: open}
	}
	return table, nil
}
