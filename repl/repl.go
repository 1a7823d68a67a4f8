/*
File    : golox/repl/repl.go

Package repl implements the Read-Eval-Print Loop for Lox. Each line is
scanned, parsed, and run as a full program fragment against one
persistent Interpreter, so variables and functions defined on one line
are visible on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxlang/golox/interp"
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with the given banner/version/prompt chrome.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until '.exit', EOF, or a readline error.
// reader is accepted for symmetry with the server's net.Conn usage but
// unused directly: readline.New manages stdin/terminal interaction on
// its own, so a TCP connection is instead wired through readline's
// Stdin/Stdout config by the caller (see cmd entrypoint's server mode).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New()
	it.Stdout = writer

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
		r.runLine(writer, line, it)
	}
}

// runLine scans, parses, and executes one line against the session's
// persistent interpreter. A scan/parse/runtime error is reported to
// writer and the loop continues — the interpreter's environment
// survives across lines even after a runtime error. A line whose last
// statement is an expression statement (an assignment such as 'x = 2;'
// included) echoes that value in yellow, the same way a calculator REPL
// would; declarations and print statements echo nothing.
func (r *Repl) runLine(writer io.Writer, line string, it *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	scanner := lexer.NewScanner(line)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		for _, perr := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", perr)
		}
		return
	}

	result, err := it.RunLine(stmts)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
