package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// matcher returns the length in bytes of the match anchored at the start of
// s, or 0 when the rule does not apply.
type matcher func(s string) int

type rule struct {
	typ   Type
	match matcher
}

// rules are tried in order at every position; the first match wins.
// Keywords precede identifiers, and identifiers precede numeric literals.
var rules = []rule{
	{PLUS, symbol('+')},
	{MINUS, symbol('-')},
	{MULTIPLY, symbol('*')},
	{DIVIDE, symbol('/')},
	{LPAREN, symbol('(')},
	{RPAREN, symbol(')')},
	{SEMICOLON, symbol(';')},
	{BIN, keyword("bin")},
	{OCT, keyword("oct")},
	{HEX, keyword("hex")},
	{ID, identifier},
	{BINARY_NUMBER, digits(isBinaryDigit)},
	{OCTAL_NUMBER, digits(isOctalDigit)},
	{HEXADECIMAL_NUMBER, digits(isHexDigit)},
}

// BaseLexer splits a declaration or expression line into tokens.
// It is stateless and safe for concurrent use.
type BaseLexer struct{}

func NewBaseLexer() *BaseLexer {
	return &BaseLexer{}
}

// Tokenize converts the input string into a slice of Tokens terminated by EOF.
// Characters that match no rule become single-character INVALID tokens.
// Example: Input: `bin x 1010;`
func (l *BaseLexer) Tokenize(input string) []Token {
	var tokens []Token

	pos := 0
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if unicode.IsSpace(r) {
			pos += size
			continue
		}

		tok, n := next(input[pos:])
		if n == 0 {
			tok, n = Token{Type: INVALID, Value: input[pos : pos+size]}, size
		}
		tokens = append(tokens, tok)
		pos += n
	}

	tokens = append(tokens, Token{Type: EOF})

	return tokens
}

func next(rest string) (Token, int) {
	for _, r := range rules {
		if n := r.match(rest); n > 0 {
			return Token{Type: r.typ, Value: rest[:n]}, n
		}
	}
	return Token{}, 0
}

func symbol(c byte) matcher {
	return func(s string) int {
		if len(s) > 0 && s[0] == c {
			return 1
		}
		return 0
	}
}

func keyword(word string) matcher {
	return func(s string) int {
		if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
			return 0
		}
		return bounded(s, len(word))
	}
}

func identifier(s string) int {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIdentPart(s[n]) {
		n++
	}
	return bounded(s, n)
}

func digits(accept func(byte) bool) matcher {
	return func(s string) int {
		n := 0
		for n < len(s) && accept(s[n]) {
			n++
		}
		if n == 0 {
			return 0
		}
		return bounded(s, n)
	}
}

// bounded returns n when s[:n] ends on a word boundary and 0 otherwise.
// A shorter prefix never helps: it would end between two word characters.
func bounded(s string, n int) int {
	if n >= len(s) {
		return n
	}
	r, _ := utf8.DecodeRuneInString(s[n:])
	if isWordChar(r) {
		return 0
	}
	return n
}

// isWordChar matches letters, decimal digits, nonspacing marks and connector
// punctuation (which includes '_').
func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) ||
		unicode.Is(unicode.Mn, ch) || unicode.Is(unicode.Pc, ch)
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
