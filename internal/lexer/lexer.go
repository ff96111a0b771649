// Package lexer implements the tokenizer described in the language
// core's component design: a single fixed regular grammar applied
// greedily left-to-right over the source text, with no state beyond the
// input string itself.
//
// Unlike a conventional hand-rolled scanner, the grammar is small enough
// to express as one regular expression; splitting it into a
// character-by-character state machine would only obscure the rule it
// implements. The Lexer type still follows the functional-options
// constructor shape used elsewhere in this codebase's family of parsers;
// it currently defines no options.
package lexer

import (
	"regexp"

	"github.com/cwbudde/golisp/internal/token"
)

// tokenPattern is the fixed lexical grammar from the component design:
//   - a two-character splice-unquote token `~@`
//   - the single-character bracket and quote-family tokens
//   - a double-quoted string, where `\` escapes the following character;
//     an unterminated string is still matched as one token (the reader
//     reports EOF for it)
//   - a `;` line comment, matched through end of line
//   - otherwise a maximal run of non-delimiter characters (an "atom"
//     token, further classified by the reader)
//
// Leading whitespace and commas are skipped between tokens; commas are
// whitespace in this grammar, never a token themselves.
var tokenPattern = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;[^\n]*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

// Lexer splits source text into a sequence of Tokens. It holds no state
// beyond the input string; Tokenize can be called once and its result
// reused freely.
type Lexer struct {
	input string
}

// Option configures a Lexer. There are currently no tokenizer options;
// the type exists so New's signature does not need to change if one is
// added (e.g. a future tracing option), matching the options pattern
// used by this codebase's other front-end stages.
type Option func(*Lexer)

// New creates a Lexer for the given input string.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize runs the fixed grammar over the input and returns every
// non-empty match as a Token, in source order. Comment tokens are
// dropped here, not by the reader: spec's tokenizer stage is defined to
// discard them after matching. Positions are tracked in runes, walking
// the matched and skipped text to keep line/column accurate across
// multi-line strings and comments.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token

	line, col := 1, 1
	advance := func(s string) {
		for _, r := range s {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
	}

	rest := l.input
	for len(rest) > 0 {
		loc := tokenPattern.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			// The grammar always matches at position 0 (possibly an
			// empty match); this guards against a pathological input
			// the regex engine cannot advance past.
			break
		}
		whole := rest[loc[0]:loc[1]]
		matchStart, matchEnd := loc[2], loc[3]
		if matchStart < 0 {
			// No capture group participated: nothing left to read.
			break
		}
		lexeme := rest[matchStart:matchEnd]

		leading := whole[:matchStart-loc[0]]
		advance(leading)
		pos := token.Position{Line: line, Column: col}

		if lexeme != "" && lexeme[0] != ';' {
			tokens = append(tokens, token.New(lexeme, pos))
		}

		advance(lexeme)
		rest = rest[loc[1]:]

		if whole == "" {
			// Both the leading whitespace and the match itself were
			// empty: nothing more can be consumed from this input.
			break
		}
	}

	return tokens
}
