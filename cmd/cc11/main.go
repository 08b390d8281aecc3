// Command cc11 is a thin CLI driver over the lexical core: it wires up the
// flag surface from spec.md §6 and, in -E mode, dumps the raw pp-token
// stream the way `cc -E` dumps preprocessed source. -S, -c and -a parse but
// report "not implemented", since parsing and code generation are out of
// scope for this core.
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"

	cc11 "github.com/cc11-lang/cc11"
	"github.com/cc11-lang/cc11/internal/diag"
	"github.com/cc11-lang/cc11/token"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) (code int) {
	var (
		modeE, modeS, modeC, modeA bool
		defines, undefs, incPaths  []string
		output                     string
		dumpAST, dumpStack         bool
		noDumpSource               bool
		wAll, wError, wSuppress    bool
		m64                        bool
		optLevel                   int
		debug                      bool
		help                       bool
	)

	getopt.BoolVarLong(&modeE, "E", 'E', "preprocess only")
	getopt.BoolVarLong(&modeS, "S", 'S', "compile to assembly only")
	getopt.BoolVarLong(&modeC, "c", 'c', "compile and assemble only")
	getopt.BoolVarLong(&modeA, "a", 'a', "dump the AST only")
	getopt.ListVarLong(&defines, "define", 'D', "predefine NAME[=VALUE]", "NAME[=VALUE]")
	getopt.ListVarLong(&undefs, "undefine", 'U', "undefine NAME", "NAME")
	getopt.ListVarLong(&incPaths, "include-dir", 'I', "add DIR to the header search path", "DIR")
	getopt.StringVarLong(&output, "output", 'o', "write output to FILE", "FILE")
	getopt.BoolVarLong(&dumpAST, "fdump-ast", 0, "dump the parsed AST")
	getopt.BoolVarLong(&dumpStack, "fdump-stack", 0, "dump the lexer's internal stacks")
	getopt.BoolVarLong(&noDumpSource, "fno-dump-source", 0, "omit source text from dumps")
	getopt.BoolVarLong(&wAll, "Wall", 0, "enable all warnings")
	getopt.BoolVarLong(&wError, "Werror", 0, "treat warnings as errors")
	getopt.BoolVarLong(&wSuppress, "w", 'w', "suppress all warnings")
	getopt.BoolVarLong(&m64, "m64", 0, "target a 64-bit ABI")
	getopt.IntVarLong(&optLevel, "O", 'O', "optimization level", "N")
	getopt.BoolVarLong(&debug, "g", 'g', "emit debug information")
	getopt.BoolVarLong(&help, "help", 'h', "display this help")
	getopt.SetParameters("FILE")

	set := getopt.CommandLine
	if err := set.Getopt(args, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		set.PrintUsage(os.Stderr)
		return 2
	}
	if help {
		set.PrintUsage(os.Stdout)
		return 0
	}

	modes := 0
	for _, m := range []bool{modeE, modeS, modeC, modeA} {
		if m {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "cc11: exactly one of -a, -c, -E, -S is required")
		return 2
	}

	files := set.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*diag.FatalError); ok {
				code = 1
				return
			}
			panic(r)
		}
	}()

	for _, f := range files {
		if err := compileOne(f, modeE, modeS || modeC || modeA, wError, dumpStack, output); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

func compileOne(path string, dumpTokens, stub, werror, dumpStack bool, output string) error {
	l, err := cc11.Init(path, werror)
	if err != nil {
		return err
	}
	if dumpStack {
		defer func() { fmt.Fprintln(os.Stderr, l.DumpStack()) }()
	}

	out := os.Stdout
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if stub {
		fmt.Fprintln(os.Stderr, "cc11: parsing and code generation are not implemented")
		return nil
	}

	if !dumpTokens {
		return nil
	}

	for {
		t := l.Lex()
		if t.Kind == token.EOF {
			break
		}
		if t.Kind == token.NEWLINE {
			fmt.Fprintln(out)
			continue
		}
		if t.Space {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, t.String())
	}
	fmt.Fprintln(out)
	return nil
}
