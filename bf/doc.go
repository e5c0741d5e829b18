// Package bf implements an interpreter for Brainfuck, the eight-instruction
// byte-tape language. Execution happens in three stages:
//   - Lexing turns source text into tokens, one per operator character
//     (`<`, `>`, `+`, `-`, `.`, `,`, `[`, `]`). Every other character is a
//     comment and is dropped.
//   - Compilation pairs every `[` with its `]` in a jump table and rejects
//     programs whose brackets do not balance.
//   - The interpreter steps through the tokens against a tape of byte cells
//     that grows on demand in both directions.
//
// Cells wrap modulo 256. Running out of input is a fatal runtime error that
// reports the source position of the failing `,`. Programs may run forever;
// hosts that need a bound set Config.StepQuota or cancel the context passed to
// Run.
package bf
