// Package token defines lexical token kinds and trivia for the stopline front-end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End) and never includes trivia.
//   - Leading trivia is everything between the previous token's trailing trivia and the token.
//   - Trailing trivia runs from the token up to and including the first newline.
//   - Contextual keywords (get, set, declare, module, ...) are lexed as keywords; the parser
//     accepts them wherever an identifier is expected.
package token
