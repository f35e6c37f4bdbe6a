// Copyright 2010-2012 Ruslan Spivak, Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command serval is the REPL entrypoint, wiring value/lexer/parser/interp
// together behind the repl package: flag-driven startup, a logged message
// and a non-zero exit status on a failing -load or -e, and a plain
// read-eval-print loop over
// standard input for the interactive case.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"serval/repl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run implements the command body against injectable streams and argument
// list, so the -load/-e flag behavior can be exercised directly in tests
// without spawning a subprocess.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("serval", flag.ContinueOnError)
	loadPath := fs.String("load", "", "load and evaluate a file before starting the REPL")
	expr := fs.String("e", "", "evaluate a single expression non-interactively and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	r := repl.New(stdin, stdout)

	if *loadPath != "" {
		if err := r.Load(*loadPath); err != nil {
			log.Printf("serval: -load %s: %v", *loadPath, err)
			return 1
		}
	}

	if *expr != "" {
		result, err := r.EvalString(*expr)
		if err != nil {
			log.Printf("serval: -e: %v", err)
			return 1
		}
		fmt.Fprintln(stdout, result.String())
		return 0
	}

	r.Run()
	return 0
}
