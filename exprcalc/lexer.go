package exprcalc

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors produced while tokenizing.
var (
	// ErrUnexpectedChar indicates a character outside the token alphabet.
	ErrUnexpectedChar = errors.New("exprcalc: unexpected character")

	// ErrBadNumber indicates a numeric literal strconv cannot parse.
	ErrBadNumber = errors.New("exprcalc: malformed number")
)

// tokenType enumerates the grammar's terminals; tokenEOF marks the
// sentinel once all input is consumed.
type tokenType int

const (
	tokenNumber tokenType = iota
	tokenPlus
	tokenMinus
	tokenMultiply
	tokenDivide
	tokenLParen
	tokenRParen
	tokenEOF
)

// token is one lexeme; value is meaningful only for tokenNumber.
type token struct {
	typ   tokenType
	value float64
}

// lexer streams tokens off an input string.
type lexer struct {
	text string
	pos  int
}

// next returns the next token, skipping whitespace first so tokens
// reflect only meaningful symbols.
func (l *lexer) next() (token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.text) {
		return token{typ: tokenEOF}, nil
	}
	c := l.text[l.pos]
	if isDigit(c) || c == '.' {
		return l.number()
	}
	l.pos++
	switch c {
	case '+':
		return token{typ: tokenPlus}, nil
	case '-':
		return token{typ: tokenMinus}, nil
	case '*':
		return token{typ: tokenMultiply}, nil
	case '/':
		return token{typ: tokenDivide}, nil
	case '(':
		return token{typ: tokenLParen}, nil
	case ')':
		return token{typ: tokenRParen}, nil
	default:
		return token{}, fmt.Errorf("%w: %q at offset %d", ErrUnexpectedChar, c, l.pos-1)
	}
}

// number scans a run of digits and dots and converts it in one go, so
// integers and floating-point literals share a path.
func (l *lexer) number() (token, error) {
	start := l.pos
	for l.pos < len(l.text) && (isDigit(l.text[l.pos]) || l.text[l.pos] == '.') {
		l.pos++
	}
	literal := l.text[start:l.pos]
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return token{}, fmt.Errorf("%w: %q at offset %d", ErrBadNumber, literal, start)
	}

	return token{typ: tokenNumber, value: value}, nil
}

// skipWhitespace keeps parsing insensitive to formatting.
func (l *lexer) skipWhitespace() {
	for l.pos < len(l.text) && (l.text[l.pos] == ' ' || l.text[l.pos] == '\t' ||
		l.text[l.pos] == '\n' || l.text[l.pos] == '\r') {
		l.pos++
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
