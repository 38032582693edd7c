// Package zerrors defines the error taxonomy shared by every stage of the
// interpreter pipeline: tokenizing, grammar construction, parsing, value
// construction, and evaluation.
package zerrors

import "github.com/pkg/errors"

// TokenizeError reports that no configured token kind matched at a position.
type TokenizeError struct {
	Line int
	Col  int
	msg  string
}

func NewTokenizeError(line, col int, restOfLine string) *TokenizeError {
	return &TokenizeError{
		Line: line,
		Col:  col,
		msg:  errors.Errorf("could not match %q", restOfLine).Error(),
	}
}

func (e *TokenizeError) Error() string {
	return errors.Wrapf(errors.New(e.msg), "tokenize error at line %d, column %d", e.Line, e.Col).Error()
}

// GrammarError reports a malformed BNF file, a missing start symbol, or an
// LL(1) ambiguity discovered while building the parse table.
type GrammarError struct {
	cause error
}

func NewGrammarError(format string, args ...interface{}) *GrammarError {
	return &GrammarError{cause: errors.Errorf(format, args...)}
}

func WrapGrammarError(err error, format string, args ...interface{}) *GrammarError {
	return &GrammarError{cause: errors.Wrapf(err, format, args...)}
}

func (e *GrammarError) Error() string { return e.cause.Error() }
func (e *GrammarError) Unwrap() error { return e.cause }

// ParseError reports that the current token did not match what the grammar
// required. Token is the offending token's textual value, for diagnostics.
type ParseError struct {
	Token string
	cause error
}

func NewParseError(token, format string, args ...interface{}) *ParseError {
	return &ParseError{Token: token, cause: errors.Errorf(format, args...)}
}

func (e *ParseError) Error() string { return e.cause.Error() }
func (e *ParseError) Unwrap() error { return e.cause }

// ConstructorError reports wrong arity or argument variant when constructing
// a built-in value (Integer(), Fraction(1,2), Array(3), ...).
type ConstructorError struct {
	cause error
}

func NewConstructorError(className, expected, given string) *ConstructorError {
	return &ConstructorError{
		cause: errors.Errorf("%s constructor expected %s; given %s", className, expected, given),
	}
}

func (e *ConstructorError) Error() string { return e.cause.Error() }
func (e *ConstructorError) Unwrap() error { return e.cause }

// RuntimeError reports a failure discovered while walking the AST: type
// mismatch in operator dispatch, uninitialized read, out-of-bounds
// subscript, division/modulo by zero, assignment through a non-lvalue,
// non-Boolean condition, increment on a non-incrementable value, or an
// unrecognized AST node.
type RuntimeError struct {
	cause error
}

func NewRuntimeError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{cause: errors.Errorf(format, args...)}
}

func WrapRuntimeError(err error, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{cause: errors.Wrapf(err, format, args...)}
}

func (e *RuntimeError) Error() string { return e.cause.Error() }
func (e *RuntimeError) Unwrap() error { return e.cause }

// OverrideError signals that a value variant was expected to implement an
// abstract operator hook it did not. This is an internal invariant
// violation in the built-in value table; it must never reach a user of the
// interpreter — every variant in internal/value is checked to implement
// every hook its category requires.
type OverrideError struct {
	cause error
}

func NewOverrideError(typeName, hookName string) *OverrideError {
	return &OverrideError{
		cause: errors.Errorf("failed to override abstract operator %s of type %s", hookName, typeName),
	}
}

func (e *OverrideError) Error() string { return e.cause.Error() }
func (e *OverrideError) Unwrap() error { return e.cause }
