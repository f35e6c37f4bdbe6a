// Copyright 2010-2012 Ruslan Spivak, Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp implements the evaluator (Eval/Apply), the environment
// model, and the primitive procedure table for serval.
package interp

import (
	"serval/interperr"
	"serval/value"
)

var (
	symQuote  = value.Symbol("quote")
	symIf     = value.Symbol("if")
	symCond   = value.Symbol("cond")
	symAnd    = value.Symbol("and")
	symOr     = value.Symbol("or")
	symDefine = value.Symbol("define")
	symSet    = value.Symbol("set!")
	symLambda = value.Symbol("lambda")
	symLet    = value.Symbol("let")
	symBegin  = value.Symbol("begin")
	symElse   = value.Symbol("else")
	symOk     = value.Symbol("ok")
)

// Eval evaluates expr in env, dispatching on syntactic form. The order
// matters: several forms share structural shape with a plain application
// and must be recognized first.
func Eval(expr value.Value, env *Environment) (value.Value, error) {
	for {
		switch e := expr.(type) {
		case value.Number, value.Boolean, value.Character, value.String:
			// 1. self-evaluating
			return expr, nil

		case value.Symbol:
			// 6. variable reference
			return env.Lookup(string(e))

		case *value.Pair:
			switch {
			case value.IsTaggedList(expr, symQuote):
				// 2. quote
				return cadr(e)

			case value.IsTaggedList(expr, symDefine):
				// 3. definition
				return evalDefine(e, env)

			case value.IsTaggedList(expr, symBegin):
				// 4. begin
				body, err := properList(cdrValue(e))
				if err != nil {
					return nil, err
				}
				if len(body) == 0 {
					return nil, interperr.New(interperr.SyntaxError, "begin: empty body")
				}
				for _, x := range body[:len(body)-1] {
					if _, err := Eval(x, env); err != nil {
						return nil, err
					}
				}
				expr = body[len(body)-1]
				continue

			case value.IsTaggedList(expr, symLet):
				// 5. let: rewritten as ((lambda (v...) body...) x...)
				rewritten, err := rewriteLet(e)
				if err != nil {
					return nil, err
				}
				expr = rewritten
				continue

			case value.IsTaggedList(expr, symSet):
				// 7. assignment
				return evalSet(e, env)

			case value.IsTaggedList(expr, symIf):
				// 8. if
				next, err := evalIfTail(e, env)
				if err != nil {
					return nil, err
				}
				expr = next
				continue

			case value.IsTaggedList(expr, symCond):
				// 9. cond, expanded into nested if/begin
				rewritten, err := condToIf(e)
				if err != nil {
					return nil, err
				}
				expr = rewritten
				continue

			case value.IsTaggedList(expr, symAnd):
				return evalAnd(e, env)

			case value.IsTaggedList(expr, symOr):
				return evalOr(e, env)

			case value.IsTaggedList(expr, symLambda):
				// 12. lambda
				params := cadrValue(e)
				body := cddrValue(e)
				return &value.Compound{Params: params, Body: body, Env: env}, nil

			default:
				// 13. application (fallback)
				operator, err := Eval(e.Head, env)
				if err != nil {
					return nil, err
				}
				argExprs, err := properList(e.Tail)
				if err != nil {
					return nil, err
				}
				args := make([]value.Value, len(argExprs))
				for i, a := range argExprs {
					v, err := Eval(a, env)
					if err != nil {
						return nil, err
					}
					args[i] = v
				}
				// Tail-position optimization for Compound procedures: loop
				// instead of recursing, so a chain of applications (e.g. the
				// bodies of cond/if-heavy code) does not add Go stack frames
				// per level. Primitives still return directly.
				switch proc := operator.(type) {
				case *value.Primitive:
					return proc.Fn(args)
				case *value.Compound:
					newEnv, err := ExtendWithParams(proc.Env.(*Environment), proc.Params, args)
					if err != nil {
						return nil, err
					}
					body, err := properList(proc.Body)
					if err != nil {
						return nil, err
					}
					if len(body) == 0 {
						return nil, interperr.New(interperr.SyntaxError, "procedure: empty body")
					}
					for _, x := range body[:len(body)-1] {
						if _, err := Eval(x, newEnv); err != nil {
							return nil, err
						}
					}
					expr = body[len(body)-1]
					env = newEnv
					continue
				default:
					return nil, interperr.Newf(interperr.TypeError, "cannot apply non-procedure: %v", operator)
				}
			}

		default:
			// self-evaluating catch-all (EmptyList, Primitive, Compound
			// values produced by a prior Eval and re-evaluated, e.g. from
			// within a primitive).
			return expr, nil
		}
	}
}

// Apply invokes proc with args. Eval's own application case inlines this
// for tail-call looping; Apply exists as the non-inlined entry point for
// callers that already have a procedure Value and an argument list in
// hand.
func Apply(proc value.Value, args []value.Value) (value.Value, error) {
	switch p := proc.(type) {
	case *value.Primitive:
		return p.Fn(args)
	case *value.Compound:
		env, err := ExtendWithParams(p.Env.(*Environment), p.Params, args)
		if err != nil {
			return nil, err
		}
		body, err := properList(p.Body)
		if err != nil {
			return nil, err
		}
		return evalSequence(body, env)
	default:
		return nil, interperr.Newf(interperr.TypeError, "cannot apply non-procedure: %v", proc)
	}
}

// evalSequence evaluates each expression in order, discarding
// intermediate values and returning the value of the last one.
func evalSequence(body []value.Value, env *Environment) (value.Value, error) {
	if len(body) == 0 {
		return nil, interperr.New(interperr.SyntaxError, "empty sequence")
	}
	var result value.Value
	var err error
	for _, x := range body {
		result, err = Eval(x, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func evalDefine(e *value.Pair, env *Environment) (value.Value, error) {
	target := cadrValue(e)
	var name value.Symbol
	var valueExpr value.Value

	switch t := target.(type) {
	case value.Symbol:
		// (define v x)
		name = t
		valueExpr = caddrValue(e)
	case *value.Pair:
		// (define (f p1 p2 ...) body...) => (define f (lambda (p1 p2 ...) body...))
		sym, ok := t.Head.(value.Symbol)
		if !ok {
			return nil, interperr.New(interperr.SyntaxError, "define: procedure name is not a symbol")
		}
		name = sym
		valueExpr = value.Cons(symLambda, value.Cons(t.Tail, cddrValue(e)))
	default:
		return nil, interperr.New(interperr.SyntaxError, "define: target is neither a symbol nor a procedure form")
	}

	v, err := Eval(valueExpr, env)
	if err != nil {
		return nil, err
	}
	env.Define(string(name), v)
	return symOk, nil
}

func evalSet(e *value.Pair, env *Environment) (value.Value, error) {
	target := cadrValue(e)
	sym, ok := target.(value.Symbol)
	if !ok {
		return nil, interperr.New(interperr.SyntaxError, "set!: target is not a symbol")
	}
	v, err := Eval(caddrValue(e), env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(string(sym), v); err != nil {
		return nil, err
	}
	return symOk, nil
}

// evalIfTail evaluates the predicate and returns the (not-yet-evaluated)
// branch expression that Eval's trampoline should continue with,
// avoiding an extra recursive call for tail position.
func evalIfTail(e *value.Pair, env *Environment) (value.Value, error) {
	pred, err := Eval(cadrValue(e), env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(pred) {
		return caddrValue(e), nil
	}
	rest := cdddrValue(e)
	if value.IsEmptyList(rest) {
		// A missing alternative evaluates to a Scheme Boolean false, not
		// the host's bare false.
		return value.List(symQuote, value.Boolean(false)), nil
	}
	alt, ok := rest.(*value.Pair)
	if !ok {
		return nil, interperr.New(interperr.SyntaxError, "if: malformed alternative")
	}
	return alt.Head, nil
}

func evalAnd(e *value.Pair, env *Environment) (value.Value, error) {
	args, err := properList(e.Tail)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return value.Boolean(true), nil
	}
	var result value.Value = value.Boolean(true)
	for i, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(v) {
			return value.Boolean(false), nil
		}
		if i == len(args)-1 {
			result = v
		}
	}
	return result, nil
}

func evalOr(e *value.Pair, env *Environment) (value.Value, error) {
	args, err := properList(e.Tail)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return value.Boolean(false), nil
	}
	for i, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) || i == len(args)-1 {
			return v, nil
		}
	}
	panic("unreachable")
}

// rewriteLet expands (let ((v x)...) body...) to
// ((lambda (v...) body...) x...).
func rewriteLet(e *value.Pair) (value.Value, error) {
	bindings, err := properList(cadrValue(e))
	if err != nil {
		return nil, interperr.New(interperr.SyntaxError, "let: malformed bindings")
	}
	var vars, inits []value.Value
	for _, b := range bindings {
		pair, ok := b.(*value.Pair)
		if !ok {
			return nil, interperr.New(interperr.SyntaxError, "let: malformed binding")
		}
		name, ok := pair.Head.(value.Symbol)
		if !ok {
			return nil, interperr.New(interperr.SyntaxError, "let: binding name is not a symbol")
		}
		init, ok := pair.Tail.(*value.Pair)
		if !ok {
			return nil, interperr.New(interperr.SyntaxError, "let: malformed binding value")
		}
		vars = append(vars, name)
		inits = append(inits, init.Head)
	}
	body := cddrValue(e)
	lambda := value.Cons(symLambda, value.Cons(value.List(vars...), body))
	return value.Cons(lambda, value.List(inits...)), nil
}

// condToIf expands (cond (p1 e1...) (p2 e2...) ... (else ek...)?) into
// nested if/begin, right-to-left.
func condToIf(e *value.Pair) (value.Value, error) {
	clauses, err := properList(e.Tail)
	if err != nil {
		return nil, interperr.New(interperr.SyntaxError, "cond: malformed clause list")
	}
	return expandClauses(clauses)
}

func expandClauses(clauses []value.Value) (value.Value, error) {
	if len(clauses) == 0 {
		return value.List(symQuote, value.Boolean(false)), nil
	}
	first, ok := clauses[0].(*value.Pair)
	if !ok {
		return nil, interperr.New(interperr.SyntaxError, "cond: malformed clause")
	}
	rest := clauses[1:]

	if sym, ok := first.Head.(value.Symbol); ok && sym == symElse {
		if len(rest) != 0 {
			return nil, interperr.New(interperr.SyntaxError, "cond: else clause isn't last")
		}
		return wrapBegin(first.Tail), nil
	}

	alt, err := expandClauses(rest)
	if err != nil {
		return nil, err
	}
	return value.List(symIf, first.Head, wrapBegin(first.Tail), alt), nil
}

// wrapBegin wraps a clause's action sequence in (begin ...) unless it is
// a single expression.
func wrapBegin(actions value.Value) value.Value {
	items, ok := value.ToSlice(actions)
	if ok && len(items) == 1 {
		return items[0]
	}
	return value.Cons(symBegin, actions)
}

// --- small list-accessor helpers mirroring Scheme's cadr/caddr/cdddr ---

func cdrValue(e *value.Pair) value.Value { return e.Tail }

func cadr(e *value.Pair) (value.Value, error) {
	p, ok := e.Tail.(*value.Pair)
	if !ok {
		return nil, interperr.New(interperr.SyntaxError, "malformed special form")
	}
	return p.Head, nil
}

func cadrValue(e *value.Pair) value.Value {
	v, err := cadr(e)
	if err != nil {
		return value.EmptyList
	}
	return v
}

func cddrValue(e *value.Pair) value.Value {
	p, ok := e.Tail.(*value.Pair)
	if !ok {
		return value.EmptyList
	}
	return p.Tail
}

func caddrValue(e *value.Pair) value.Value {
	rest := cddrValue(e)
	p, ok := rest.(*value.Pair)
	if !ok {
		return value.EmptyList
	}
	return p.Head
}

func cdddrValue(e *value.Pair) value.Value {
	rest := cddrValue(e)
	p, ok := rest.(*value.Pair)
	if !ok {
		return value.EmptyList
	}
	return p.Tail
}

// properList flattens a Scheme list into a Go slice, failing with
// SyntaxError if it is improper.
func properList(v value.Value) ([]value.Value, error) {
	items, ok := value.ToSlice(v)
	if !ok {
		return nil, interperr.New(interperr.SyntaxError, "expected a proper list")
	}
	return items, nil
}
