package bf

import (
	"errors"
	"testing"
)

func TestBuildJumpTablePairsNestedLoops(t *testing.T) {
	// index:      0123456789
	tokens := Lex("+[>[-]<[]]")
	table, err := BuildJumpTable(tokens)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	want := map[int]int{1: 9, 9: 1, 3: 5, 5: 3, 7: 8, 8: 7}
	if len(table) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), table)
	}
	for k, v := range want {
		if table[k] != v {
			t.Fatalf("table[%d] = %d, want %d", k, table[k], v)
		}
	}
}

func TestBuildJumpTableIsSymmetric(t *testing.T) {
	programs := []string{
		"",
		"[]",
		"[][][]",
		"[[[[]]]]",
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.",
	}
	for _, src := range programs {
		table, err := BuildJumpTable(Lex(src))
		if err != nil {
			t.Fatalf("%q: build failed: %v", src, err)
		}
		for k := range table {
			if table[table[k]] != k {
				t.Fatalf("%q: table[table[%d]] = %d", src, k, table[table[k]])
			}
		}
	}
}

func TestBuildJumpTableRejectsUnmatchedBrackets(t *testing.T) {
	cases := []struct {
		src   string
		want  error
		index int
		pos   int
	}{
		{"]", ErrUnmatchedLoopClose, 0, 1},
		{"[]]", ErrUnmatchedLoopClose, 2, 3},
		{"[", ErrUnmatchedLoopOpen, 0, 1},
		{"[ [ ]", ErrUnmatchedLoopOpen, 0, 1},
		{"[][", ErrUnmatchedLoopOpen, 2, 3},
	}
	for _, tc := range cases {
		_, err := BuildJumpTable(Lex(tc.src))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.src, tc.want, err)
		}
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("%q: expected *SyntaxError, got %T", tc.src, err)
		}
		if syntaxErr.Index != tc.index || syntaxErr.Token.Pos != tc.pos {
			t.Fatalf("%q: unexpected location index=%d pos=%d", tc.src, syntaxErr.Index, syntaxErr.Token.Pos)
		}
	}
}
