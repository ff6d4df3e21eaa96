/*
File    : mypl/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive Read-Eval-Print Loop over the
lexer/parser/checker/interpreter pipeline. The REPL keeps one
Interpreter (and its input reader) for the whole session, but each line
is parsed, type-checked with a fresh checker, and run in its own
top-level scope: variables assigned on one line are not visible on the
next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/mypl/check"
	"github.com/akashmaji946/mypl/interp"
	"github.com/akashmaji946/mypl/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl ready for Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until the user types '.exit' or readline reports
// an error (EOF or an interrupt on the terminal).
// reader is only consulted by `readint`/`readstr` inside a running
// statement - line input itself always comes from readline, which owns
// the terminal for history and editing.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ip := interp.New(writer, reader)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.execute(writer, line, ip)
	}
}

// execute parses, type-checks, and runs one line against ip's ongoing
// scope. A parse or type error is reported and the line is skipped, but
// the REPL itself keeps running - only a file run aborts the process.
func (r *Repl) execute(writer io.Writer, line string, ip *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "%v\n", recovered)
		}
	}()

	tree := parser.New(line).Parse()

	if err := check.Check(tree); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if err := ip.Run(tree); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
