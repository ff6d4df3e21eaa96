/*
File    : mypl/cmd/mypl/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the interpreter. It provides two
modes of operation:
 1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
 2. File Mode: Execute a source file from the command line

The interpreter uses a lexer-parser-checker-interpreter pipeline to
process source code. Passing --lex, --parse, --ast, or --check alongside
a file stops the pipeline early and dumps that stage's output, mirroring
the progressive mypl0..mypl3 drivers the pipeline itself was grounded on.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akashmaji946/mypl/ast"
	"github.com/akashmaji946/mypl/check"
	"github.com/akashmaji946/mypl/interp"
	"github.com/akashmaji946/mypl/lexer"
	"github.com/akashmaji946/mypl/parser"
	"github.com/akashmaji946/mypl/repl"
	"github.com/akashmaji946/mypl/token"
	"github.com/fatih/color"
)

// VERSION is the current version of the interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "mypl >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ███▄ ▄███▓▓██   ██▓ ██▓███   ██▓
 ▓██▒▀█▀ ██▒ ▒██  ██▒▓██░  ██▒▓██▒
 ▓██    ▓██░  ▒██ ██░▓██░ ██▓▒▒██▒
 ▒██    ▒██    ░ ▐██▓░▒██▄█▓▒ ▒░██░
 ▒██▒   ░██▒   ░ ██▒▓░▒██▒ ░  ░░██░
 ░ ▒░   ░  ░    ██▒▒▒ ▒▓▒░ ░  ░░▓
 ░  ░      ░  ▓██ ░▒░ ░▒ ░      ▒ ░
 ░      ░     ▒ ▒ ░░  ░░        ▒ ░
        ░     ░ ░                ░
              ░ ░
`

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// armSigintExit0 makes an interrupt (Ctrl-C, or SIGTERM) terminate the
// process with status 0, matching the original driver's
// `except KeyboardInterrupt: sys.exit(0)` around main(filename).
func armSigintExit0() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		os.Exit(0)
	}()
}

func main() {
	armSigintExit0()
	args := os.Args[1:]

	if len(args) == 0 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return
	case "--version", "-v":
		showVersion()
		return
	}

	stage := ""
	fileName := ""
	for _, a := range args {
		switch a {
		case "--lex", "--parse", "--ast", "--check":
			stage = a
		default:
			fileName = a
		}
	}

	if fileName == "" {
		redColor.Fprintln(os.Stderr, "[USAGE ERROR] expecting a source file")
		showHelp()
		os.Exit(1)
	}

	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stdout, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	switch stage {
	case "--lex":
		runLex(string(source))
	case "--parse":
		runParse(string(source))
	case "--ast":
		runAST(string(source))
	case "--check":
		runCheck(string(source))
	default:
		runFile(string(source))
	}
}

func showHelp() {
	cyanColor.Println("mypl - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mypl                      Start interactive REPL mode")
	yellowColor.Println("  mypl <path-to-file>       Execute a source file")
	yellowColor.Println("  mypl --lex <file>         Print the token stream and exit")
	yellowColor.Println("  mypl --parse <file>       Parse the file and report syntax errors")
	yellowColor.Println("  mypl --ast <file>         Print the parsed AST and exit")
	yellowColor.Println("  mypl --check <file>       Type-check the file and exit")
	yellowColor.Println("  mypl --help               Display this help message")
	yellowColor.Println("  mypl --version            Display version information")
}

func showVersion() {
	cyanColor.Println("mypl - a tree-walking interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runLex prints every token the lexer produces, one per line, stopping
// at EOS, in the original Token.__str__ form (TYPE 'lexeme' line:col);
// an extra blank line follows each ";" the same way the source prints
// one after every statement. A lex error aborts with its positioned
// message.
func runLex(source string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stdout, "%v\n", r)
			os.Exit(1)
		}
	}()

	lx := lexer.New(source)
	for {
		tok := lx.NextToken()
		fmt.Println(tok.String())
		if tok.Type == token.SEMICOLON {
			fmt.Println()
		}
		if tok.Type == token.EOS {
			break
		}
	}
}

// runParse parses the file and reports success or the first syntax
// error; it does not print the resulting tree.
func runParse(source string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stdout, "%v\n", r)
			os.Exit(1)
		}
	}()
	parser.New(source).Parse()
	yellowColor.Println("parse OK")
}

// runAST parses the file and prints the resulting syntax tree.
func runAST(source string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stdout, "%v\n", r)
			os.Exit(1)
		}
	}()
	tree := parser.New(source).Parse()
	fmt.Print(ast.Print(tree))
}

// runCheck parses and type-checks the file, reporting success or the
// first positioned diagnostic.
func runCheck(source string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stdout, "%v\n", r)
			os.Exit(1)
		}
	}()
	tree := parser.New(source).Parse()
	if err := check.Check(tree); err != nil {
		redColor.Fprintf(os.Stdout, "%s\n", err)
		os.Exit(1)
	}
	yellowColor.Println("check OK")
}

// runFile runs the full pipeline: parse, type-check, interpret. A
// diagnostic from any stage is printed and the process exits nonzero.
func runFile(source string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stdout, "%v\n", r)
			os.Exit(1)
		}
	}()

	tree := parser.New(source).Parse()

	if err := check.Check(tree); err != nil {
		redColor.Fprintf(os.Stdout, "%s\n", err)
		os.Exit(1)
	}

	ip := interp.New(os.Stdout, os.Stdin)
	if err := ip.Run(tree); err != nil {
		redColor.Fprintf(os.Stdout, "%s\n", err)
		os.Exit(1)
	}
}
