// Copyright 2010-2012 Ruslan Spivak, Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl implements the read-eval-print loop and the `load`
// file-inclusion side effect on top of value/lexer/parser/interp: a
// bufio.NewReader(os.Stdin)/ReadString loop that parses and evaluates
// every top-level datum on each line and prints its result, reporting
// and recovering from errors without losing previously accumulated
// environment state.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"serval/interp"
	"serval/interperr"
	"serval/parser"
	"serval/value"
)

// Prompt is printed before reading each line, matching the source's
// 'serval> ' prompt.
const Prompt = "serval> "

var symLoad = value.Symbol("load")

// REPL holds the streams and the live interpreter environment shared
// across every line read. State accumulated by define/set! persists
// across lines and across errors.
type REPL struct {
	env *interp.Environment
	in  *bufio.Reader
	out io.Writer
}

// New creates a REPL bound to a fresh global environment. in and out are
// typically os.Stdin and os.Stdout, but any io.Reader/io.Writer work.
func New(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		env: interp.NewGlobalEnvironment(),
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Env exposes the REPL's environment, for a driver that wants to
// preload a file (-load) or an expression (-e) against the same state
// before handing off to Run.
func (r *REPL) Env() *interp.Environment { return r.env }

// Run reads lines from standard input until EOF, evaluating every
// top-level datum parsed from each line, not just the first. A
// `(load <path>)` form appearing as the line's first datum is handled
// specially and does not itself print a result.
func (r *REPL) Run() {
	for {
		fmt.Fprint(r.out, Prompt)
		line, err := r.in.ReadString('\n')
		if err != nil && err != io.EOF {
			fmt.Fprintln(r.out, err)
			return
		}
		if strings.TrimSpace(line) != "" {
			r.evalLine(line)
		}
		if err == io.EOF {
			fmt.Fprintln(r.out)
			return
		}
	}
}

// evalLine parses every datum on line and evaluates each in turn,
// printing its value, except that a leading (load <path>) form is
// diverted to Load instead of being evaluated and printed itself. Any
// error aborts the rest of the line; prior define/set! effects from
// earlier datums on the same line, or earlier lines, persist.
func (r *REPL) evalLine(line string) {
	exprs, err := parser.ParseString("repl", strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	if len(exprs) == 0 {
		return
	}
	if value.IsTaggedList(exprs[0], symLoad) {
		if err := r.evalLoadForm(exprs[0]); err != nil {
			fmt.Fprintln(r.out, err)
		}
		exprs = exprs[1:]
	}
	for _, e := range exprs {
		result, err := interp.Eval(e, r.env)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return
		}
		fmt.Fprintln(r.out, result.String())
	}
}

func (r *REPL) evalLoadForm(expr value.Value) error {
	p, ok := expr.(*value.Pair)
	if !ok {
		return interperr.New(interperr.SyntaxError, "load: malformed form")
	}
	argPair, ok := p.Tail.(*value.Pair)
	if !ok {
		return interperr.New(interperr.SyntaxError, "load: missing path argument")
	}
	path, ok := argPair.Head.(value.String)
	if !ok {
		return interperr.New(interperr.TypeError, "load: path must be a string")
	}
	return r.Load(string(path))
}

// Load resolves path to an absolute path, reads it fully, parses every
// datum in it, and evaluates each in order against the REPL's live
// environment, matching expression/util.py's load(): the whole file is
// read before any datum in it is evaluated.
func (r *REPL) Load(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return err
	}
	exprs, err := parser.ParseString(abs, string(data))
	if err != nil {
		return err
	}
	for _, e := range exprs {
		if _, err := interp.Eval(e, r.env); err != nil {
			return err
		}
	}
	return nil
}

// EvalString parses and evaluates every top-level datum in src against
// the REPL's environment, returning the value of the last one. Used by
// the -e command-line flag to evaluate a single expression
// non-interactively.
func (r *REPL) EvalString(src string) (value.Value, error) {
	exprs, err := parser.ParseString("-e", src)
	if err != nil {
		return nil, err
	}
	var result value.Value = value.EmptyList
	for _, e := range exprs {
		result, err = interp.Eval(e, r.env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
