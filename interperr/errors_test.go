// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interperr

import (
	"errors"
	"testing"
)

func TestKindDispatch(t *testing.T) {
	err := Newf(TypeError, "car of non-pair: %d", 5)
	var target *Error
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed to unwrap *Error")
	}
	if target.Kind != TypeError {
		t.Errorf("Kind = %v, want TypeError", target.Kind)
	}
}

func TestIsComparesKindNotMessage(t *testing.T) {
	a := New(ArityError, "wrong number of arguments to foo")
	b := New(ArityError, "wrong number of arguments to bar")
	if !errors.Is(a, b) {
		t.Error("errors.Is(a, b) = false, want true for same Kind")
	}
	c := New(TypeError, "wrong number of arguments to foo")
	if errors.Is(a, c) {
		t.Error("errors.Is(a, c) = true, want false for differing Kind")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		LexError:        "lex error",
		ParseError:      "parse error",
		UnboundVariable: "unbound variable",
		ArityError:      "arity error",
		TypeError:       "type error",
		SyntaxError:     "syntax error",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
