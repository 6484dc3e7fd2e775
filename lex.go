package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an arithmetic statement: either a number or
// one of the symbols in Symbols. Tokens are values and never change after
// they are created.
type Token struct {
	val  float64
	pos  int
	sym  rune
	kind TokenKind
}

// TokenKind discriminates the two cases of Token.
type TokenKind int8

const (
	// TokenNone is the kind of the zero Token, which is not a valid token.
	TokenNone TokenKind = iota
	// TokenNum is a non-negative decimal number.
	TokenNum
	// TokenSym is an operator or a parenthesis.
	TokenSym
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenSym:
		return "Sym"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are binary operators.
const Operators = "+-*/"

// Symbols contains every rune which lexes as a symbol token.
const Symbols = "()" + Operators

// Num creates a number token at the given column.
func Num(v float64, pos int) Token {
	return Token{val: v, pos: pos, kind: TokenNum}
}

// Sym creates a symbol token at the given column. Panics if r is not in
// Symbols.
func Sym(r rune, pos int) Token {
	if !strings.ContainsRune(Symbols, r) {
		panic("arith: invalid symbol " + strconv.QuoteRune(r))
	}
	return Token{sym: r, pos: pos, kind: TokenSym}
}

// Kind returns the token's kind.
func (t Token) Kind() TokenKind {
	return t.kind
}

// Value returns the value of a number token. It is 0 for symbols.
func (t Token) Value() float64 {
	return t.val
}

// Symbol returns the rune of a symbol token. It is 0 for numbers.
func (t Token) Symbol() rune {
	return t.sym
}

// Pos returns the column of the first rune of the token, counting from 1.
func (t Token) Pos() int {
	return t.pos
}

// Prec returns the precedence of an operator token. Multiplication and
// division are 2, addition and subtraction are 1. Parentheses and numbers
// are 0, i.e. not operators.
func (t Token) Prec() int {
	if t.kind != TokenSym {
		return 0
	}
	switch t.sym {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// IsOperator reports whether t is one of the binary operators.
func (t Token) IsOperator() bool {
	return t.Prec() > 0
}

// Text returns the token as it could be written in a statement.
func (t Token) Text() string {
	switch t.kind {
	case TokenNum:
		return strconv.FormatFloat(t.val, 'f', -1, 64)
	case TokenSym:
		return string(t.sym)
	default:
		return ""
	}
}

func (t Token) String() string {
	return t.kind.String() + ":" + t.Text() + "@" + strconv.Itoa(t.pos)
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	toks []Token
	// rune is the number of runes read so far.
	rune int
	// start is the column where the pending literal in buf began.
	start int
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// flush emits the pending literal, if there is one, as a number token.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	defer l.buf.Reset()
	s := l.buf.String()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &LexError{Text: s, Kind: "number", Col: l.start}
	}
	l.toks = append(l.toks, Num(v, l.start))
	return nil
}

// Tokenize scans a statement into tokens in source order. Whitespace is
// ignored everywhere, including between the digits of a number, so "1 2"
// is the single number 12.
//
// A nil src, or a src containing nothing but whitespace, results in an
// *EmptyExpressionError. A rune outside digits, '.', whitespace, and Symbols,
// or a literal which is not a finite decimal number, results in a *LexError.
// Errors from src other than io.EOF are returned unchanged.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	if src == nil {
		return nil, &EmptyExpressionError{}
	}
	l := lexer{src: src}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			if l.buf.Len() == 0 {
				l.start = l.rune
			}
			l.buf.WriteRune(r)
		case strings.ContainsRune(Symbols, r):
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.toks = append(l.toks, Sym(r, l.rune))
		default:
			return nil, &LexError{Text: string(r), Col: l.rune}
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	if len(l.toks) == 0 {
		return nil, &EmptyExpressionError{Col: l.rune + 1}
	}
	return l.toks, nil
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}
