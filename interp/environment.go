// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"serval/interperr"
	"serval/value"
)

// Environment is one frame in the chain of nested lexical scopes.
// Frames are shared by reference: a Compound closure captures its
// defining Environment, and define/set! mutate a frame in place so that
// all holders of the reference observe the change.
type Environment struct {
	vars   map[string]value.Value
	parent *Environment
}

// NewGlobalEnvironment creates the root frame, seeded with every
// primitive procedure.
func NewGlobalEnvironment() *Environment {
	env := &Environment{vars: make(map[string]value.Value)}
	for name, fn := range Primitives() {
		env.vars[name] = &value.Primitive{Name: name, Fn: fn}
	}
	return env
}

// Extend creates a new frame whose parent is env, used on every procedure
// application and let-binding application.
func (env *Environment) Extend() *Environment {
	return &Environment{vars: make(map[string]value.Value), parent: env}
}

// Define binds name to val in the current frame, overwriting any existing
// binding already present in this frame.
func (env *Environment) Define(name string, val value.Value) {
	env.vars[name] = val
}

// Set walks the parent chain to the nearest frame already binding name
// and overwrites it there. It fails with UnboundVariable if no such frame
// exists.
func (env *Environment) Set(name string, val value.Value) error {
	for e := env; e != nil; e = e.parent {
		if _, ok := e.vars[name]; ok {
			e.vars[name] = val
			return nil
		}
	}
	return interperr.Newf(interperr.UnboundVariable, "unbound variable: %s", name)
}

// Lookup walks the parent chain and returns the first binding found for
// name, failing with UnboundVariable if absent everywhere.
func (env *Environment) Lookup(name string) (value.Value, error) {
	for e := env; e != nil; e = e.parent {
		if v, ok := e.vars[name]; ok {
			return v, nil
		}
	}
	return nil, interperr.Newf(interperr.UnboundVariable, "unbound variable: %s", name)
}

// ExtendWithParams creates a frame binding each formal parameter in
// params (a proper or dotted Scheme list of Symbols) to the
// corresponding value in args, positionally, with parent as the parent
// frame. Arity must match exactly, except when params ends in a bare
// Symbol (rest-parameter form), which is accepted as a non-goal
// extension point but not otherwise exercised by the primitive set.
func ExtendWithParams(parent *Environment, params value.Value, args []value.Value) (*Environment, error) {
	env := parent.Extend()
	i := 0
	cur := params
	for {
		switch p := cur.(type) {
		case *value.Pair:
			sym, ok := p.Head.(value.Symbol)
			if !ok {
				return nil, interperr.New(interperr.SyntaxError, "lambda parameter is not a symbol")
			}
			if i >= len(args) {
				return nil, interperr.New(interperr.ArityError, "too few arguments")
			}
			env.Define(string(sym), args[i])
			i++
			cur = p.Tail
		default:
			if value.IsEmptyList(cur) {
				if i != len(args) {
					return nil, interperr.New(interperr.ArityError, "too many arguments")
				}
				return env, nil
			}
			// dotted parameter list: bind the remainder as a list.
			sym, ok := cur.(value.Symbol)
			if !ok {
				return nil, interperr.New(interperr.SyntaxError, "lambda parameter is not a symbol")
			}
			env.Define(string(sym), value.List(args[i:]...))
			return env, nil
		}
	}
}
