// Copyright 2010-2012 Ruslan Spivak, Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEvalFlagPrintsResultAndExitsZero(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-e", "(+ 1 2)"}, strings.NewReader(""), &out)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := strings.TrimSpace(out.String()); got != "3" {
		t.Fatalf("output = %q, want %q", got, "3")
	}
}

func TestRunLoadMissingFileExitsNonZeroWithoutRepl(t *testing.T) {
	var out bytes.Buffer
	missing := filepath.Join(t.TempDir(), "does-not-exist.scm")
	code := run([]string{"-load", missing}, strings.NewReader(""), &out)
	if code == 0 {
		t.Fatalf("exit code = 0, want non-zero for missing -load file")
	}
	if out.String() != "" {
		t.Fatalf("stdout = %q, want empty (no REPL entered)", out.String())
	}
}

func TestRunLoadThenEvalSeesLoadedDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.scm")
	if err := os.WriteFile(path, []byte("(define (square x) (* x x))"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	code := run([]string{"-load", path, "-e", "(square 6)"}, strings.NewReader(""), &out)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := strings.TrimSpace(out.String()); got != "36" {
		t.Fatalf("output = %q, want %q", got, "36")
	}
}
