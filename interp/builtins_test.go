// Copyright 2010-2012 Ruslan Spivak, Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"testing"

	"serval/value"
)

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	fn, ok := Primitives()[name]
	if !ok {
		t.Fatalf("no such primitive: %s", name)
	}
	return fn(args)
}

func TestAddIdentityOnSingleArg(t *testing.T) {
	v, err := call(t, "+", value.Number(7))
	if err != nil || v != value.Number(7) {
		t.Errorf("(+ 7) = %v, %v; want 7, nil", v, err)
	}
}

func TestAddFoldsLeftToRight(t *testing.T) {
	v, err := call(t, "+", value.Number(1), value.Number(2), value.Number(3))
	if err != nil || v != value.Number(6) {
		t.Errorf("(+ 1 2 3) = %v, %v; want 6, nil", v, err)
	}
}

func TestSubUnaryReturnsArgUnchanged(t *testing.T) {
	v, err := call(t, "-", value.Number(5))
	if err != nil || v != value.Number(5) {
		t.Errorf("(- 5) = %v, %v; want 5, nil (unary - deviation)", v, err)
	}
}

func TestSubBinary(t *testing.T) {
	v, err := call(t, "-", value.Number(5), value.Number(3))
	if err != nil || v != value.Number(2) {
		t.Errorf("(- 5 3) = %v, %v; want 2, nil", v, err)
	}
}

func TestDivByZeroIsError(t *testing.T) {
	if _, err := call(t, "/", value.Number(1), value.Number(0)); err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestComparisonSingleArgIsTrue(t *testing.T) {
	v, err := call(t, "<", value.Number(1))
	if err != nil || v != value.Boolean(true) {
		t.Errorf("(< 1) = %v, %v; want #t, nil", v, err)
	}
}

func TestComparisonPairwiseFold(t *testing.T) {
	v, err := call(t, "<", value.Number(1), value.Number(2), value.Number(1))
	if err != nil || v != value.Boolean(false) {
		t.Errorf("(< 1 2 1) = %v, %v; want #f, nil", v, err)
	}
}

func TestConsCarCdr(t *testing.T) {
	p, err := call(t, "cons", value.Number(1), value.Number(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	car, _ := call(t, "car", p)
	cdr, _ := call(t, "cdr", p)
	if car != value.Number(1) || cdr != value.Number(2) {
		t.Errorf("car=%v cdr=%v, want 1 2", car, cdr)
	}
}

func TestCarOfNonPairIsWrongType(t *testing.T) {
	if _, err := call(t, "car", value.Number(1)); err == nil {
		t.Fatal("expected a type error")
	}
}

func TestNullPredicate(t *testing.T) {
	v, _ := call(t, "null?", value.EmptyList)
	if v != value.Boolean(true) {
		t.Errorf("(null? '()) = %v, want #t", v)
	}
	v, _ = call(t, "null?", value.Number(0))
	if v != value.Boolean(false) {
		t.Errorf("(null? 0) = %v, want #f", v)
	}
}

func TestEqPStructural(t *testing.T) {
	v, _ := call(t, "eq?", value.Symbol("a"), value.Symbol("a"))
	if v != value.Boolean(true) {
		t.Errorf("(eq? 'a 'a) = %v, want #t", v)
	}
}

func TestAbs(t *testing.T) {
	v, _ := call(t, "abs", value.Number(-4))
	if v != value.Number(4) {
		t.Errorf("(abs -4) = %v, want 4", v)
	}
}

func TestExpt(t *testing.T) {
	v, err := call(t, "expt", value.Number(2), value.Number(10))
	if err != nil || v != value.Number(1024) {
		t.Errorf("(expt 2 10) = %v, %v; want 1024, nil", v, err)
	}
}

func TestLengthOfProperList(t *testing.T) {
	list := value.List(value.Number(1), value.Number(2), value.Number(3))
	v, err := call(t, "length", list)
	if err != nil || v != value.Number(3) {
		t.Errorf("(length '(1 2 3)) = %v, %v; want 3, nil", v, err)
	}
}

func TestNotFlipsTruthiness(t *testing.T) {
	v, _ := call(t, "not", value.Boolean(false))
	if v != value.Boolean(true) {
		t.Errorf("(not #f) = %v, want #t", v)
	}
	// Number(0) is truthy per the source's deviation, so (not 0) is #f.
	v, _ = call(t, "not", value.Number(0))
	if v != value.Boolean(false) {
		t.Errorf("(not 0) = %v, want #f", v)
	}
}

func TestArityErrorsFromPrimitives(t *testing.T) {
	if _, err := call(t, "cons", value.Number(1)); err == nil {
		t.Error("expected an arity error for (cons 1)")
	}
	if _, err := call(t, "car"); err == nil {
		t.Error("expected an arity error for (car)")
	}
}
