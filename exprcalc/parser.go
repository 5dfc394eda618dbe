package exprcalc

import (
	"errors"
	"fmt"
)

// Sentinel errors produced while parsing and evaluating.
var (
	// ErrUnexpectedToken indicates the grammar expected a different token
	// (missing operand, unbalanced parenthesis, trailing input).
	ErrUnexpectedToken = errors.New("exprcalc: unexpected token")

	// ErrDivisionByZero indicates a divisor evaluated to exactly zero.
	ErrDivisionByZero = errors.New("exprcalc: division by zero")
)

// Evaluate parses and evaluates an arithmetic expression in one pass.
// Supported syntax: decimal literals, + - * /, unary minus, parentheses,
// arbitrary whitespace.
//
// Complexity: O(n) time, O(d) memory (d = nesting depth).
func Evaluate(input string) (float64, error) {
	p := &parser{lex: &lexer{text: input}}
	if err := p.advance(); err != nil {
		return 0, err
	}
	value, err := p.expression()
	if err != nil {
		return 0, err
	}
	// The whole input must be one expression; trailing tokens are errors.
	if p.current.typ != tokenEOF {
		return 0, fmt.Errorf("%w: trailing input after expression", ErrUnexpectedToken)
	}

	return value, nil
}

// parser holds one-token lookahead over the lexer.
type parser struct {
	lex     *lexer
	current token
}

// advance pulls the next token into the lookahead slot.
func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.current = t

	return nil
}

// expect consumes the lookahead if it matches, or fails the parse.
func (p *parser) expect(typ tokenType) error {
	if p.current.typ != typ {
		return fmt.Errorf("%w: %s", ErrUnexpectedToken, describe(p.current.typ))
	}

	return p.advance()
}

// expression := term ((+|-) term)*
func (p *parser) expression() (float64, error) {
	value, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.current.typ == tokenPlus || p.current.typ == tokenMinus {
		op := p.current.typ
		if err = p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == tokenPlus {
			value += rhs
		} else {
			value -= rhs
		}
	}

	return value, nil
}

// term := factor ((*|/) factor)*
func (p *parser) term() (float64, error) {
	value, err := p.factor()
	if err != nil {
		return 0, err
	}
	for p.current.typ == tokenMultiply || p.current.typ == tokenDivide {
		op := p.current.typ
		if err = p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == tokenMultiply {
			value *= rhs
		} else {
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			value /= rhs
		}
	}

	return value, nil
}

// factor := number | '-' factor | '(' expression ')'
func (p *parser) factor() (float64, error) {
	switch p.current.typ {
	case tokenNumber:
		value := p.current.value
		if err := p.advance(); err != nil {
			return 0, err
		}

		return value, nil
	case tokenMinus:
		// Unary minus: negate the following factor.
		if err := p.advance(); err != nil {
			return 0, err
		}
		value, err := p.factor()
		if err != nil {
			return 0, err
		}

		return -value, nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return 0, err
		}
		value, err := p.expression()
		if err != nil {
			return 0, err
		}
		if err = p.expect(tokenRParen); err != nil {
			return 0, err
		}

		return value, nil
	default:
		return 0, fmt.Errorf("%w: expected number or parenthesis, got %s",
			ErrUnexpectedToken, describe(p.current.typ))
	}
}

// describe names a token type for error messages.
func describe(typ tokenType) string {
	switch typ {
	case tokenNumber:
		return "number"
	case tokenPlus:
		return "'+'"
	case tokenMinus:
		return "'-'"
	case tokenMultiply:
		return "'*'"
	case tokenDivide:
		return "'/'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return "end of input"
	}
}
