// Package token defines the lexical token representation shared by the
// tokenizer and the reader.
package token

import "fmt"

// Position identifies a location in source text by 1-based line and
// column (column counts runes, not bytes, matching the reader's view of
// the text rather than its UTF-8 encoding).
type Position struct {
	Line   int
	Column int
}

// String renders a position as "line:column" for error messages.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme produced by the tokenizer: the literal
// matched text plus the position of its first rune. The tokenizer never
// classifies tokens beyond this; classification (integer, string,
// symbol, keyword, ...) is the reader's job.
type Token struct {
	Literal string
	Pos     Position
}

func New(literal string, pos Position) Token {
	return Token{Literal: literal, Pos: pos}
}
