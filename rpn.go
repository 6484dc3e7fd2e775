package arith

import (
	"io"
	"strings"
)

// Postfix reorders a statement's tokens from infix to postfix order using
// the shunting-yard algorithm. Operators of equal precedence group from left
// to right, so "a - b - c" becomes "a b - c -". Parentheses do not appear in
// the result.
//
// Beyond balancing parentheses, Postfix checks that operators and terms
// alternate, so its result is always a well-formed postfix sequence. A
// leading or doubled operator results in an *OperatorError with Unary set,
// since there are no unary operators; two adjacent terms result in an
// *OperatorError with no Operator; an operator at the end of the statement
// or before a close bracket results in an *OperandError.
//
// Postfix panics if any token is the zero Token.
func Postfix(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, &EmptyExpressionError{}
	}
	out := make([]Token, 0, len(tokens))
	var stack []Token
	// term is whether the next token must begin a term.
	term := true
	for i, tok := range tokens {
		switch tok.kind {
		case TokenNum:
			if !term {
				return nil, &OperatorError{Col: tok.pos}
			}
			out = append(out, tok)
			term = false
		case TokenSym:
			switch tok.sym {
			case '(':
				if !term {
					return nil, &OperatorError{Col: tok.pos}
				}
				stack = append(stack, tok)
			case ')':
				if i == 0 {
					return nil, &BracketError{Col: tok.pos, Right: ")"}
				}
				if term {
					// The previous token is either ( or an operator.
					prev := tokens[i-1]
					if prev.sym == '(' {
						return nil, &EmptyExpressionError{Col: tok.pos, End: ")"}
					}
					return nil, &OperandError{Col: prev.pos, Operator: string(prev.sym), Have: 1}
				}
				for {
					if len(stack) == 0 {
						return nil, &BracketError{Col: tok.pos, Right: ")"}
					}
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					if top.sym == '(' {
						break
					}
					out = append(out, top)
				}
			default:
				if term {
					return nil, &OperatorError{Col: tok.pos, Operator: string(tok.sym), Unary: true}
				}
				for len(stack) > 0 && stack[len(stack)-1].Prec() >= tok.Prec() {
					out = append(out, stack[len(stack)-1])
					stack = stack[:len(stack)-1]
				}
				stack = append(stack, tok)
				term = true
			}
		default:
			panic("arith: invalid token " + tok.String())
		}
	}
	if term {
		last := tokens[len(tokens)-1]
		if last.sym == '(' {
			return nil, &BracketError{Col: last.pos, Left: "("}
		}
		return nil, &OperandError{Col: last.pos, Operator: string(last.sym), Have: 1}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.sym == '(' {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}

// Expr is a statement converted to postfix order, ready for evaluation.
type Expr struct {
	rpn []Token
}

// Parse tokenizes a statement and converts it to postfix order.
func Parse(src io.RuneScanner) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	rpn, err := Postfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// ParseString is a shortcut to parse a string statement.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// Postfix returns a copy of the expression's tokens in postfix order.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.rpn...)
}

// Eval evaluates the expression.
func (e *Expr) Eval() (float64, error) {
	return EvalPostfix(e.rpn)
}

// String creates a string representation of the expression in postfix
// order with tokens separated by spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text())
	}
	return b.String()
}
