// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"testing"

	"serval/value"
)

func TestDefineAndLookup(t *testing.T) {
	env := NewGlobalEnvironment()
	env.Define("x", value.Number(10))
	v, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(10) {
		t.Errorf("got %v, want 10", v)
	}
}

func TestDefineIdempotentWithinFrame(t *testing.T) {
	env := NewGlobalEnvironment()
	env.Define("x", value.Number(1))
	env.Define("x", value.Number(2))
	v, _ := env.Lookup("x")
	if v != value.Number(2) {
		t.Errorf("got %v, want 2 (second define should win)", v)
	}
}

func TestLookupUnbound(t *testing.T) {
	env := NewGlobalEnvironment()
	if _, err := env.Lookup("nope"); err == nil {
		t.Fatal("expected an UnboundVariable error")
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := NewGlobalEnvironment()
	parent.Define("x", value.Number(1))
	child := parent.Extend()
	v, err := child.Lookup("x")
	if err != nil || v != value.Number(1) {
		t.Errorf("child.Lookup(x) = %v, %v; want 1, nil", v, err)
	}
}

func TestSetPropagatesToOuterFrame(t *testing.T) {
	parent := NewGlobalEnvironment()
	parent.Define("v", value.Number(1))
	child := parent.Extend()
	if err := child.Set("v", value.Number(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
		// Lookups from either frame now observe the new value.
	got, _ := parent.Lookup("v")
	if got != value.Number(99) {
		t.Errorf("parent.Lookup(v) = %v, want 99", got)
	}
	got, _ = child.Lookup("v")
	if got != value.Number(99) {
		t.Errorf("child.Lookup(v) = %v, want 99", got)
	}
}

func TestSetUnboundIsError(t *testing.T) {
	env := NewGlobalEnvironment()
	if err := env.Set("nope", value.Number(1)); err == nil {
		t.Fatal("expected an UnboundVariable error")
	}
}

func TestExtendWithParamsExactArity(t *testing.T) {
	parent := NewGlobalEnvironment()
	params := value.List(value.Symbol("a"), value.Symbol("b"))
	env, err := ExtendWithParams(parent, params, []value.Value{value.Number(1), value.Number(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := env.Lookup("a")
	b, _ := env.Lookup("b")
	if a != value.Number(1) || b != value.Number(2) {
		t.Errorf("a=%v b=%v, want 1 2", a, b)
	}
}

func TestExtendWithParamsArityMismatch(t *testing.T) {
	parent := NewGlobalEnvironment()
	params := value.List(value.Symbol("a"), value.Symbol("b"))
	if _, err := ExtendWithParams(parent, params, []value.Value{value.Number(1)}); err == nil {
		t.Fatal("expected an ArityError for too few arguments")
	}
	if _, err := ExtendWithParams(parent, params, []value.Value{value.Number(1), value.Number(2), value.Number(3)}); err == nil {
		t.Fatal("expected an ArityError for too many arguments")
	}
}
