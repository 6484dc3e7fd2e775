package arith

import (
	"io"
	"math"
	"strings"
)

// values is the value stack used to evaluate postfix sequences.
type values []float64

// push adds a value to the top of the stack.
func (s *values) push(x float64) {
	*s = append(*s, x)
}

// pop removes the top from the stack and returns it.
func (s *values) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// EvalPostfix evaluates a sequence of tokens in postfix order.
//
// An operator with fewer than two values available results in an
// *OperandError. Division by zero results in a *DivisionError, and any other
// operation without a finite result in a *RangeError. If the sequence does
// not reduce to exactly one value, including when it is empty, the result is
// a *StackError. A parenthesis in the sequence results in a *BracketError.
//
// EvalPostfix panics if any token is the zero Token.
func EvalPostfix(rpn []Token) (float64, error) {
	stack := make(values, 0, len(rpn)/2+1)
	col := 0
	for _, tok := range rpn {
		col = tok.pos
		switch tok.kind {
		case TokenNum:
			stack.push(tok.val)
		case TokenSym:
			switch tok.sym {
			case '(':
				return 0, &BracketError{Col: tok.pos, Left: "("}
			case ')':
				return 0, &BracketError{Col: tok.pos, Right: ")"}
			}
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Operator: string(tok.sym), Have: len(stack)}
			}
			y := stack.pop()
			x := stack.pop()
			r, err := apply(tok, x, y)
			if err != nil {
				return 0, err
			}
			stack.push(r)
		default:
			panic("arith: invalid token " + tok.String())
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Col: col, Len: len(stack)}
	}
	return stack[0], nil
}

// apply computes x op y for an operator token.
func apply(op Token, x, y float64) (float64, error) {
	var r float64
	switch op.sym {
	case '+':
		r = x + y
	case '-':
		r = x - y
	case '*':
		r = x * y
	case '/':
		if y == 0 {
			return 0, &DivisionError{Col: op.pos, X: x}
		}
		r = x / y
	default:
		panic("arith: invalid operator " + op.String())
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, &RangeError{Col: op.pos, Operator: string(op.sym)}
	}
	return r, nil
}

// Eval is a shortcut to parse a statement and return its value.
func Eval(src io.RuneScanner) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string statement.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// Evaluate evaluates a statement and formats its value. The boolean result
// is false, and the string empty, if the statement is invalid for any
// reason. Use EvalString to learn why.
func Evaluate(statement string, opts ...FormatOption) (string, bool) {
	x, err := EvalString(statement)
	if err != nil {
		return "", false
	}
	return Format(x, opts...), true
}

// EvaluatePtr is like Evaluate, but a nil statement is invalid.
func EvaluatePtr(statement *string, opts ...FormatOption) (string, bool) {
	if statement == nil {
		return "", false
	}
	return Evaluate(*statement, opts...)
}
