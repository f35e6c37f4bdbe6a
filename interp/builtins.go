// Copyright 2010-2012 Ruslan Spivak, Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"serval/interperr"
	"serval/value"
)

// builtinFunc is the signature every primitive procedure implements,
// matching value.Primitive.Fn: a variadic argument list in, a single
// Value (or an error) out.
type builtinFunc func(args []value.Value) (value.Value, error)

// Primitives returns the table of built-in procedures seeded into the
// global environment.
func Primitives() map[string]builtinFunc {
	return map[string]builtinFunc{
		"+":       arithFold(0, func(acc, n int64) int64 { return acc + n }),
		"-":       builtinSub,
		"*":       arithFold(1, func(acc, n int64) int64 { return acc * n }),
		"/":       builtinDiv,
		"=":       comparison(func(a, b int64) bool { return a == b }),
		"<":       comparison(func(a, b int64) bool { return a < b }),
		"<=":      comparison(func(a, b int64) bool { return a <= b }),
		">":       comparison(func(a, b int64) bool { return a > b }),
		">=":      comparison(func(a, b int64) bool { return a >= b }),
		"cons":    builtinCons,
		"car":     builtinCar,
		"cdr":     builtinCdr,
		"list":    builtinList,
		"pair?":   builtinPairP,
		"null?":   builtinNullP,
		"eq?":     builtinEqP,
		"zero?":   builtinZeroP,
		"number?": builtinNumberP,
		"even?":   builtinEvenP,
		"abs":     builtinAbs,
		"expt":    builtinExpt,
		"length":  builtinLength,
		"not":     builtinNot,
	}
}

func wrongType(name string, v value.Value) error {
	return interperr.Newf(interperr.TypeError, "%s: wrong argument type: %v", name, v)
}

func arityErr(name string) error {
	return interperr.Newf(interperr.ArityError, "wrong number of arguments to %s", name)
}

func asNumber(name string, v value.Value) (int64, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, wrongType(name, v)
	}
	return int64(n), nil
}

// arithFold builds a left-fold over one-or-more integer operands for +
// and *. With a single argument it returns that argument unchanged,
// which is the correct identity-preserving behavior for both + and *
// (unlike "-", see builtinSub).
func arithFold(seed int64, op func(acc, n int64) int64) builtinFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, arityErr("arithmetic")
		}
		first, err := asNumber("arithmetic", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return value.Number(first), nil
		}
		acc := first
		for _, a := range args[1:] {
			n, err := asNumber("arithmetic", a)
			if err != nil {
				return nil, err
			}
			acc = op(acc, n)
		}
		return value.Number(acc), nil
	}
}

// builtinSub deliberately deviates from standard Scheme: a single
// argument to "-" is returned unchanged rather than negated.
func builtinSub(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, arityErr("-")
	}
	first, err := asNumber("-", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return value.Number(first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := asNumber("-", a)
		if err != nil {
			return nil, err
		}
		acc -= n
	}
	return value.Number(acc), nil
}

func builtinDiv(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, arityErr("/")
	}
	first, err := asNumber("/", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return value.Number(first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := asNumber("/", a)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, interperr.New(interperr.TypeError, "/: division by zero")
		}
		acc /= n // truncation toward zero
	}
	return value.Number(acc), nil
}

// comparison folds pairwise over adjacent arguments, short-circuiting to
// #f on the first failing pair and returning #t for a single argument.
func comparison(cmp func(a, b int64) bool) builtinFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, arityErr("comparison")
		}
		if len(args) == 1 {
			return value.Boolean(true), nil
		}
		prev, err := asNumber("comparison", args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := asNumber("comparison", a)
			if err != nil {
				return nil, err
			}
			if !cmp(prev, n) {
				return value.Boolean(false), nil
			}
			prev = n
		}
		return value.Boolean(true), nil
	}
}

func builtinCons(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("cons")
	}
	return value.Cons(args[0], args[1]), nil
}

func builtinCar(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("car")
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, wrongType("car", args[0])
	}
	return p.Head, nil
}

func builtinCdr(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("cdr")
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, wrongType("cdr", args[0])
	}
	return p.Tail, nil
}

func builtinList(args []value.Value) (value.Value, error) {
	return value.List(args...), nil
}

func builtinPairP(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("pair?")
	}
	_, ok := args[0].(*value.Pair)
	return value.Boolean(ok), nil
}

func builtinNullP(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("null?")
	}
	return value.Boolean(value.IsEmptyList(args[0])), nil
}

func builtinEqP(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("eq?")
	}
	return value.Boolean(value.Equal(args[0], args[1])), nil
}

func builtinZeroP(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("zero?")
	}
	n, err := asNumber("zero?", args[0])
	if err != nil {
		return nil, err
	}
	return value.Boolean(n == 0), nil
}

func builtinNumberP(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("number?")
	}
	_, ok := args[0].(value.Number)
	return value.Boolean(ok), nil
}

func builtinEvenP(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("even?")
	}
	n, err := asNumber("even?", args[0])
	if err != nil {
		return nil, err
	}
	return value.Boolean(n%2 == 0), nil
}

func builtinAbs(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("abs")
	}
	n, err := asNumber("abs", args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	return value.Number(n), nil
}

func builtinExpt(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("expt")
	}
	base, err := asNumber("expt", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asNumber("expt", args[1])
	if err != nil {
		return nil, err
	}
	if exp < 0 {
		return nil, interperr.New(interperr.TypeError, "expt: negative exponent unsupported")
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return value.Number(result), nil
}

func builtinLength(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("length")
	}
	items, ok := value.ToSlice(args[0])
	if !ok {
		return nil, wrongType("length", args[0])
	}
	return value.Number(len(items)), nil
}

func builtinNot(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("not")
	}
	return value.Boolean(!value.Truthy(args[0])), nil
}
