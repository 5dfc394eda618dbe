// Package exprcalc evaluates arithmetic expressions with a recursive
// descent parser.
//
// What:
//
//   - A lexer turns the input into Number / operator / paren / EOF tokens,
//     skipping whitespace.
//   - The parser maps each grammar non-terminal to one function:
//
//     expression := term ((+|-) term)*
//     term       := factor ((*|/) factor)*
//     factor     := number | '-' factor | '(' expression ')'
//
//   - Because the functions follow the grammar literally, nesting (parens,
//     unary minus chains) falls out of ordinary recursion.
//
// Why:
//
//   - Recursive descent is the most readable parsing technique for
//     operator grammars, and precedence emerges from the call structure
//     alone: term binds tighter than expression because it sits deeper.
//
// Complexity:
//
//   - Time:   O(n) over the input length
//   - Memory: O(d) recursion, d = nesting depth
//
// Errors:
//
//   - ErrUnexpectedChar:  a character outside the token alphabet.
//   - ErrBadNumber:       a malformed numeric literal (e.g. "1.2.3").
//   - ErrUnexpectedToken: the grammar expected something else (missing
//     operand or ')', trailing input).
//   - ErrDivisionByZero:  a divisor evaluated to exactly zero.
package exprcalc
