// This is the main-driver for our compiler.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/skx/subc/codegen"
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/internal/source"
	"github.com/skx/subc/lexer"
	"github.com/skx/subc/parser"
)

func main() {

	//
	// Look for flags.
	//
	debug := flag.Bool("debug", false, "Insert debug \"stuff\" (int3 breakpoints) in our generated output.")
	flag.Parse()

	//
	// Ensure we have a single source-file argument.
	//
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: subc [-debug] file.c\n")
		os.Exit(1)
	}
	path := flag.Args()[0]

	//
	// Read the source file. Driver-level failures (missing file, too
	// large) are plain Go errors, reported via pkg/errors' causal chain.
	//
	src, err := source.Read(path)
	if err != nil {
		if *debug {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Cause(err))
		}
		os.Exit(1)
	}

	//
	// Everything from here on is source-positioned: a lex or parse
	// error reports via internal/diag's caret diagnostic and terminates
	// the process directly (subc performs no error recovery).
	//
	diag.Init(src)

	toks := lexer.Lex(src)
	prog := parser.Parse(toks)

	gen := codegen.New(*debug)
	out := gen.Generate(prog)

	fmt.Print(out)
}
