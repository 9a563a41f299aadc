// Command forjery runs a postfix stack program read from a file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/xerrors"

	"github.com/agenthands/forjery/pkg/compiler/lexer"
	"github.com/agenthands/forjery/pkg/diag"
	"github.com/agenthands/forjery/pkg/vm"
)

const usage = "Usage: forjery file"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main with its process state passed in. It returns the exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("forjery", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return diag.KindUsage.ExitCode()
	}

	// 1. Load Source
	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, "forjery:", err)
		return 1
	}

	out := bufio.NewWriter(stdout)
	err = execute(src, out)
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = xerrors.Errorf("forjery: %w", ferr)
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return diag.ExitCode(err)
	}
	return 0
}

// execute lexes src completely, then evaluates it, printing to out.
func execute(src []byte, out io.Writer) error {
	// 2. Lex
	code, err := lexer.NewScanner(src, lexer.ReservedWords()).Scan()
	if err != nil {
		return err
	}

	// 3. Run
	m := vm.NewMachine(out)
	m.Load(code)
	return m.Run()
}
