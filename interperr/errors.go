// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interperr defines the small closed set of error kinds that the
// serval lexer, parser, and evaluator can raise: an enumerated code
// alongside a message, rather than ad hoc fmt.Errorf values, so callers
// can branch on kind with errors.As instead of string-matching.
package interperr

import "fmt"

// Kind identifies which error category an Error represents.
type Kind int

// Error kinds.
const (
	_ Kind = iota
	LexError
	ParseError
	UnboundVariable
	ArityError
	TypeError
	SyntaxError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case UnboundVariable:
		return "unbound variable"
	case ArityError:
		return "arity error"
	case TypeError:
		return "type error"
	case SyntaxError:
		return "syntax error"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type raised across the lexer, parser and
// evaluator. It carries a Kind so the REPL (and tests) can distinguish
// categories without parsing the message text.
type Error struct {
	Kind    Kind
	Message string
}

// New creates an Error of the given kind with a literal message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error with the same Kind, enabling
// errors.Is(err, interperr.New(interperr.TypeError, "")) style checks in
// addition to errors.As.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
