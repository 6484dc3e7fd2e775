// Package arith evaluates arithmetic statements over decimal numbers.
//
// A statement contains non-negative numbers like 12 or 4.5, the binary
// operators + - * /, parentheses, and whitespace, which is ignored. "*" and
// "/" bind more tightly than "+" and "-", and operators of equal precedence
// group from left to right, so "10 - 2 - 3" is 5. There is no unary minus.
//
// Evaluation is a pipeline of separately usable stages: Tokenize scans the
// statement, Postfix reorders its tokens with the shunting-yard algorithm,
// EvalPostfix reduces them on a value stack, and Format renders the result
// with at most four fractional digits, rounding toward positive infinity.
// Evaluate runs all of them and reports only whether the statement was
// valid; the other functions return errors which implement InputError and
// can be grouped with ClassOf.
//
// Everything in the package is safe for concurrent use.
package arith
