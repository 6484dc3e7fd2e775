package arith_test

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/Knetic/govaluate"

	"github.com/zephyrtronium/arith"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"num", "5", "5"},
		{"decimal", "2.5", "2.5"},
		{"prec", "2 + 3 * 4", "14"},
		{"left-assoc", "10 - 2 - 3", "5"},
		{"div-left-assoc", "100 / 10 / 5", "2"},
		{"paren", "(2 + 3) * 4", "20"},
		{"nested", "((2 + 3) * (4 - 1)) / 5", "3"},
		{"third", "1 / 3", "0.3334"},
		{"two-thirds", "2 / 3", "0.6667"},
		{"neg-third", "1 - 4 / 3", "-0.3333"},
		{"half", "10 / 4", "2.5"},
		{"negative", "7 - 10", "-3"},
		{"original", "(1 + 38) * 4.5 - 1 / 2.", "175"},
		{"spaces", " 1 2 + 3 ", "15"},
		{"no-spaces", "(1+2)*3", "9"},
		{"product-integral", "1.5 * 2", "3"},
		{"small", "0.00001 + 0", "0.0001"},
		{"near-zero", "3 - 3.00001", "0"},
		{"tiny-neg", "0 - 1 / 3000000", "0"},
		// Ceiling applies to the shortest decimal of the nearest double,
		// 0.30000000000000004.
		{"point-three", "0.1 + 0.2", "0.3001"},
		{"big", "100000000000 * 1000000000", "100000000000000000000"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, ok := arith.Evaluate(c.src)
			if !ok {
				_, err := arith.EvalString(c.src)
				t.Fatalf("%q is invalid: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: want %q, got %q", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluateInvalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"div-zero", "1 / 0"},
		{"div-zero-expr", "1 / (2 - 2)"},
		{"zero-div-zero", "0 / 0"},
		{"open", "(1 + 2"},
		{"close", "1 + 2)"},
		{"trailing", "1 + "},
		{"leading", "* 2"},
		{"unary", "-1"},
		{"char", "1 & 2"},
		{"pow", "2 ^ 3"},
		{"sci", "1e5"},
		{"var", "x + 1"},
		{"empty-parens", "()"},
		{"dots", "1..2"},
		{"comma", "1,5"},
		{"overflow", strings.Repeat("9", 300) + " * " + strings.Repeat("9", 300)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, ok := arith.Evaluate(c.src)
			if ok || r != "" {
				t.Errorf("%q: want invalid, got %q", c.src, r)
			}
		})
	}
}

func TestEvaluatePtr(t *testing.T) {
	if r, ok := arith.EvaluatePtr(nil); ok || r != "" {
		t.Errorf("nil statement gave %q", r)
	}
	s := "6 / 4"
	if r, ok := arith.EvaluatePtr(&s); !ok || r != "1.5" {
		t.Errorf("%q gave %q, %t", s, r, ok)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		err   error
		class arith.Class
	}{
		{"empty", "", &arith.EmptyExpressionError{Col: 1}, arith.ClassStructural},
		{"char", "1 & 2", &arith.LexError{Text: "&", Col: 3}, arith.ClassLexical},
		{"number", "1.2.3 + 4", &arith.LexError{Text: "1.2.3", Kind: "number", Col: 1}, arith.ClassLexical},
		{"open", "(1 + 2", &arith.BracketError{Col: 1, Left: "("}, arith.ClassStructural},
		{"trailing", "1 + ", &arith.OperandError{Col: 3, Operator: "+", Have: 1}, arith.ClassStructural},
		{"unary", "-1", &arith.OperatorError{Col: 1, Operator: "-", Unary: true}, arith.ClassStructural},
		{"div-zero", "1 / 0", &arith.DivisionError{Col: 3, X: 1}, arith.ClassArithmetic},
		{"div-zero-late", "2 * 3 / (1 - 1)", &arith.DivisionError{Col: 7, X: 6}, arith.ClassArithmetic},
		{"overflow", strings.Repeat("9", 300) + "*" + strings.Repeat("9", 10), &arith.RangeError{Col: 301, Operator: "*"}, arith.ClassArithmetic},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.EvalString(c.src)
			if r != 0 {
				t.Errorf("%q: got nonzero result %g with error", c.src, r)
			}
			if !reflect.DeepEqual(err, c.err) {
				t.Errorf("%q: want %#v, got %#v", c.src, c.err, err)
			}
			if class := arith.ClassOf(err); class != c.class {
				t.Errorf("%q: want class %v, got %v", c.src, c.class, class)
			}
			var in arith.InputError
			if !errors.As(err, &in) {
				t.Fatalf("%q: %v is not an InputError", c.src, err)
			}
			if !strings.HasPrefix(err.Error(), fmt.Sprint(in.Pos())+": ") {
				t.Errorf("%q: message %q doesn't start with position %d", c.src, err.Error(), in.Pos())
			}
		})
	}
}

func TestEvalNil(t *testing.T) {
	_, err := arith.Eval(nil)
	if _, ok := err.(*arith.EmptyExpressionError); !ok {
		t.Errorf("want *EmptyExpressionError, got %#v", err)
	}
}

func TestEvalPostfix(t *testing.T) {
	num, sym := arith.Num, arith.Sym
	cases := []struct {
		name string
		rpn  []arith.Token
		r    float64
		err  error
	}{
		{"num", []arith.Token{num(4, 1)}, 4, nil},
		{"sub", []arith.Token{num(10, 1), num(4, 2), sym('-', 3)}, 6, nil},
		{"div", []arith.Token{num(1, 1), num(4, 2), sym('/', 3)}, 0.25, nil},
		{"chain", []arith.Token{num(2, 1), num(3, 2), num(4, 3), sym('*', 4), sym('+', 5)}, 14, nil},
		{"empty", nil, 0, &arith.StackError{Col: 0, Len: 0}},
		{"leftover", []arith.Token{num(1, 1), num(2, 3)}, 0, &arith.StackError{Col: 3, Len: 2}},
		{"missing", []arith.Token{num(1, 1), sym('+', 2)}, 0, &arith.OperandError{Col: 2, Operator: "+", Have: 1}},
		{"op-only", []arith.Token{sym('*', 1)}, 0, &arith.OperandError{Col: 1, Operator: "*", Have: 0}},
		{"div-zero", []arith.Token{num(3, 1), num(0, 2), sym('/', 3)}, 0, &arith.DivisionError{Col: 3, X: 3}},
		{"overflow", []arith.Token{num(1e308, 1), num(10, 2), sym('*', 3)}, 0, &arith.RangeError{Col: 3, Operator: "*"}},
		{"overflow-add", []arith.Token{num(math.MaxFloat64, 1), num(math.MaxFloat64, 2), sym('+', 3)}, 0, &arith.RangeError{Col: 3, Operator: "+"}},
		{"open", []arith.Token{num(1, 2), sym('(', 1)}, 0, &arith.BracketError{Col: 1, Left: "("}},
		{"close", []arith.Token{num(1, 1), sym(')', 2)}, 0, &arith.BracketError{Col: 2, Right: ")"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.EvalPostfix(c.rpn)
			if !reflect.DeepEqual(err, c.err) {
				t.Errorf("want error %#v, got %#v", c.err, err)
			}
			if r != c.r {
				t.Errorf("want %g, got %g", c.r, r)
			}
		})
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		err   error
		class arith.Class
	}{
		{nil, arith.ClassNone},
		{io.ErrUnexpectedEOF, arith.ClassNone},
		{&arith.LexError{}, arith.ClassLexical},
		{&arith.EmptyExpressionError{}, arith.ClassStructural},
		{&arith.BracketError{}, arith.ClassStructural},
		{&arith.OperatorError{}, arith.ClassStructural},
		{&arith.OperandError{}, arith.ClassStructural},
		{&arith.StackError{}, arith.ClassStructural},
		{&arith.DivisionError{}, arith.ClassArithmetic},
		{&arith.RangeError{}, arith.ClassArithmetic},
		{fmt.Errorf("statement 3: %w", &arith.DivisionError{}), arith.ClassArithmetic},
		{fmt.Errorf("statement 3: %w", &arith.LexError{}), arith.ClassLexical},
	}
	for _, c := range cases {
		if class := arith.ClassOf(c.err); class != c.class {
			t.Errorf("%#v: want %v, got %v", c.err, c.class, class)
		}
	}
	for c, s := range map[arith.Class]string{
		arith.ClassNone:       "none",
		arith.ClassLexical:    "lexical",
		arith.ClassStructural: "structural",
		arith.ClassArithmetic: "arithmetic",
	} {
		if c.String() != s {
			t.Errorf("want %q, got %q", s, c.String())
		}
	}
}

// TestGovaluate checks results against an independent evaluator.
func TestGovaluate(t *testing.T) {
	cases := []string{
		"2 + 3 * 4",
		"2 * 3 + 4 * 5",
		"9 - 3 * 2",
		"(1 + 38) * 4.5 - 1 / 2",
		"3.25 * (2 + 6) / 4",
		"((7 - 2) * (3 + 4)) / 5",
		"100 / 8",
		"0.1 + 0.2",
		"1 / 3",
		"(12.5 - 0.5) * (0.25 + 0.75) / 7",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			ge, err := govaluate.NewEvaluableExpression(src)
			if err != nil {
				t.Fatalf("govaluate couldn't parse %q: %v", src, err)
			}
			gr, err := ge.Evaluate(nil)
			if err != nil {
				t.Fatalf("govaluate couldn't evaluate %q: %v", src, err)
			}
			want, ok := gr.(float64)
			if !ok {
				t.Fatalf("govaluate gave %T", gr)
			}
			got, err := arith.EvalString(src)
			if err != nil {
				t.Fatalf("%q: %v", src, err)
			}
			if math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
				t.Errorf("%q: want %g, got %g", src, want, got)
			}
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, src := range []string{"0", "7", "2 * 21", "1000000 * 1000000", "(3 + 4) * (5 + 6)"} {
		r, ok := arith.Evaluate(src)
		if !ok {
			t.Fatalf("%q is invalid", src)
		}
		toks, err := arith.TokenizeString(r)
		if err != nil {
			t.Fatalf("formatted %q doesn't lex: %v", r, err)
		}
		if len(toks) != 1 || toks[0].Kind() != arith.TokenNum {
			t.Fatalf("formatted %q lexes as %v", r, toks)
		}
		if rr, ok := arith.Evaluate(r); !ok || rr != r {
			t.Errorf("%q re-evaluates to %q, %t", r, rr, ok)
		}
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	cases := map[string]string{
		"2 + 3 * 4":   "14",
		"10 - 2 - 3":  "5",
		"1 / 3":       "0.3334",
		"(2 + 3) * 4": "20",
		"1 / 0":       "",
	}
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for src, want := range cases {
					if r, _ := arith.Evaluate(src); r != want {
						errs <- fmt.Sprintf("%q: want %q, got %q", src, want, r)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	b.Run("short", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			arith.Evaluate("2 + 3 * 4")
		}
	})
	b.Run("long", func(b *testing.B) {
		src := strings.Repeat("(1.5 + 2) * 3 / 4 - ", 50) + "1"
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			arith.Evaluate(src)
		}
	})
}

func Example() {
	for _, s := range []string{"(1 + 38) * 4.5 - 1 / 2.", "1 / 3", "10 - 2 - 3", "1 / 0", "(1 + 2"} {
		r, ok := arith.Evaluate(s)
		if !ok {
			_, err := arith.EvalString(s)
			fmt.Printf("%-24s invalid (%v: %v)\n", s, arith.ClassOf(err), err)
			continue
		}
		fmt.Printf("%-24s %s\n", s, r)
	}

	// Output:
	// (1 + 38) * 4.5 - 1 / 2.  175
	// 1 / 3                    0.3334
	// 10 - 2 - 3               5
	// 1 / 0                    invalid (arithmetic: 3: division of 1 by zero)
	// (1 + 2                   invalid (structural: 1: open bracket ( with no close bracket)
}
