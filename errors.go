package arith

import (
	"errors"
	"strconv"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid rune, or the whole literal for an invalid number.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if the rune cannot begin any token.
	Kind string
	// Col is the position of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty statement or an
// empty pair of parentheses.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression. It is 0
	// if there was no statement at all.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, if it is the unmatched one.
	Left string
	// Right is the closing parenthesis, if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator where a term was
// expected, or two terms with no operator between them. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the offending token.
	Col int
	// Operator is the operator which appeared in a unary position. It is
	// the empty string if an operator is missing.
	Operator string
	// Unary is whether the operator appeared where only a unary operator
	// could. There are no unary operators.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "missing operator")
	}
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unexpected "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator without both of its
// operands. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator missing an operand.
	Operator string
	// Have is the number of operands that were available, if known.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// StackError is an error indicating that evaluation did not finish with
// exactly one value. It implements InputError.
type StackError struct {
	// Col is the position of the last token evaluated, or 0 if there were
	// none.
	Col int
	// Len is the number of values left.
	Len int
}

func (err *StackError) Error() string {
	if err.Len == 0 {
		return errpos(err.Col, "no value")
	}
	return errpos(err.Col, strconv.Itoa(err.Len)+" values with no operator joining them")
}

func (err *StackError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating a division by zero. It implements
// InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division of "+strconv.FormatFloat(err.X, 'g', -1, 64)+" by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// RangeError is an error indicating an operation whose result is not a
// finite number. It implements InputError.
type RangeError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that overflowed.
	Operator string
}

func (err *RangeError) Error() string {
	return errpos(err.Col, "result of "+strconv.Quote(err.Operator)+" out of range")
}

func (err *RangeError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*RangeError)(nil)
)

// Class groups input errors by the stage of evaluation that detects them.
type Class int8

const (
	// ClassNone is the class of nil and of errors not caused by input.
	ClassNone Class = iota
	// ClassLexical is the class of invalid characters and numbers.
	ClassLexical
	// ClassStructural is the class of malformed statements: empty input,
	// unbalanced parentheses, and missing operands or operators.
	ClassStructural
	// ClassArithmetic is the class of well-formed statements with no finite
	// value, e.g. division by zero.
	ClassArithmetic
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassLexical:
		return "lexical"
	case ClassStructural:
		return "structural"
	case ClassArithmetic:
		return "arithmetic"
	default:
		return "Class(" + strconv.Itoa(int(c)) + ")"
	}
}

// ClassOf returns the class of an error returned by this package.
func ClassOf(err error) Class {
	var (
		lex *LexError
		div *DivisionError
		rng *RangeError
		in  InputError
	)
	switch {
	case err == nil:
		return ClassNone
	case errors.As(err, &lex):
		return ClassLexical
	case errors.As(err, &div), errors.As(err, &rng):
		return ClassArithmetic
	case errors.As(err, &in):
		return ClassStructural
	default:
		return ClassNone
	}
}
