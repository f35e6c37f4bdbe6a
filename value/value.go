// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the homogeneous runtime datum of serval: the
// same tagged sum represents both source text parsed into S-expressions
// and the results of evaluating them, in the Lisp tradition.
package value

import (
	"bytes"
	"fmt"
)

// Value is the universal Scheme datum. Every variant below implements it;
// the evaluator pattern-matches on concrete type and never on a list
// encoding.
type Value interface {
	// String returns the printed form of the value.
	String() string
}

// Number is an exact integer. serval uses a 64-bit signed integer rather
// than an unbounded integer; the source's arbitrary precision is not
// required by any of the end-to-end scenarios.
type Number int64

func (n Number) String() string { return fmt.Sprintf("%d", int64(n)) }

// Boolean is Scheme's #t / #f. It is the only Value that is false in a
// predicate context; see Truthy.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Character holds the lexeme following the #\ prefix (e.g. "a", "newline",
// "space"), not a bare rune, so multi-character names print back exactly
// as lexed.
type Character string

func (c Character) String() string { return "#\\" + string(c) }

// String is an immutable Scheme string. The surrounding quotes are not
// part of the stored content.
type String string

func (s String) String() string { return "\"" + string(s) + "\"" }

// Symbol is a name compared by value, never by identity.
type Symbol string

func (s Symbol) String() string { return string(s) }

// emptyListType is the type of the unique EmptyList sentinel. It is
// distinct from any Pair and must never be constructed a second time;
// every "end of list" test compares against the package-level EmptyList
// value, not a freshly built one.
type emptyListType struct{}

func (emptyListType) String() string { return "()" }

// EmptyList is the singleton value denoting (). Comparisons against it
// must use == ; a second emptyListType{} literal would also compare
// equal since the struct carries no fields, but callers should still
// always use this shared value for clarity.
var EmptyList Value = emptyListType{}

// IsEmptyList reports whether v is the EmptyList sentinel.
func IsEmptyList(v Value) bool {
	_, ok := v.(emptyListType)
	return ok
}

// Pair is an ordered binary cell. Proper lists are Pair chains whose
// final Tail is EmptyList; dotted (improper) lists end in some other
// Value. The evaluator never introduces cycles into a Pair chain.
type Pair struct {
	Head Value
	Tail Value
}

// Cons builds a new Pair. It is the only way new list structure is
// created; every list-building primitive (cons, list) is implemented in
// terms of it.
func Cons(head, tail Value) *Pair {
	return &Pair{Head: head, Tail: tail}
}

func (p *Pair) String() string {
	buf := new(bytes.Buffer)
	buf.WriteByte('(')
	writePairBody(p, buf)
	buf.WriteByte(')')
	return buf.String()
}

// writePairBody writes the space-separated elements of a Pair chain,
// flattening nested proper-list structure and falling back to dotted
// notation ("a b . c") the moment the chain's tail is neither another
// Pair nor EmptyList.
func writePairBody(p *Pair, buf *bytes.Buffer) {
	buf.WriteString(p.Head.String())
	switch tail := p.Tail.(type) {
	case *Pair:
		buf.WriteByte(' ')
		writePairBody(tail, buf)
	case nil:
		// defensive: a nil Tail should never occur, but print as
		// EmptyList rather than panic.
	default:
		if IsEmptyList(tail) {
			return
		}
		buf.WriteString(" . ")
		buf.WriteString(tail.String())
	}
}

// List constructs a proper list from the given values, in order.
func List(items ...Value) Value {
	var result Value = EmptyList
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result)
	}
	return result
}

// ToSlice flattens a proper list into a Go slice. It returns false if v
// is not a proper list (i.e. some tail along the chain is neither a Pair
// nor EmptyList).
func ToSlice(v Value) ([]Value, bool) {
	var result []Value
	for {
		if IsEmptyList(v) {
			return result, true
		}
		p, ok := v.(*Pair)
		if !ok {
			return result, false
		}
		result = append(result, p.Head)
		v = p.Tail
	}
}

// Primitive wraps a host-implemented procedure of variable arity. The
// wrapped function receives its arguments as a Go slice, already
// flattened from the Scheme argument list by the evaluator.
type Primitive struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (p *Primitive) String() string { return "#<primitive " + p.Name + ">" }

// Compound is a closure: a set of formal parameters, a body (a Scheme
// list of expressions evaluated in sequence), and the environment active
// at the point of definition. Env is declared as an interface{} here to
// avoid an import cycle with the interp package, which defines
// Environment and narrows Env back to *interp.Environment.
type Compound struct {
	Params Value // proper or dotted list of Symbols
	Body   Value // Scheme list of body expressions
	Env    interface{}
}

func (c *Compound) String() string {
	return fmt.Sprintf("#<procedure %s %s <procedure-env>", c.Params, c.Body)
}

// Truthy implements Scheme's truthiness rule: everything except the
// Boolean false value is true, including Number(0), EmptyList, the empty
// String, and the Symbol "else".
func Truthy(v Value) bool {
	if b, ok := v.(Boolean); ok {
		return bool(b)
	}
	return true
}

// Equal implements the structural equality required by the eq?
// primitive: value equality for Number, Boolean, Symbol, Character and
// String; identity for EmptyList (trivially true, since EmptyList is a
// singleton); tag-and-pointer equality for everything else (Pair,
// Primitive, Compound).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Character:
		bv, ok := b.(Character)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case emptyListType:
		return IsEmptyList(b)
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && av == bv
	case *Primitive:
		bv, ok := b.(*Primitive)
		return ok && av == bv
	case *Compound:
		bv, ok := b.(*Compound)
		return ok && av == bv
	default:
		return false
	}
}

// IsTaggedList reports whether expr is a Pair whose Head is the Symbol
// tag, the sole recognizer the evaluator uses to distinguish special
// forms from applications.
func IsTaggedList(expr Value, tag Symbol) bool {
	p, ok := expr.(*Pair)
	if !ok {
		return false
	}
	s, ok := p.Head.(Symbol)
	return ok && s == tag
}
