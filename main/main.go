/*
File    : golox/main/main.go

Package main is the 'lox' entry point: REPL by default, file execution
given a path, plus '--help'/'--version'/'server <port>' as the rest of
the CLI surface.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/loxlang/golox/file"
	"github.com/loxlang/golox/interp"
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/parser"
	"github.com/loxlang/golox/repl"
)

const (
	exitUsageError = 64
	exitDataError  = 65 // scan or parse error
	exitSoftware   = 70 // runtime error
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "the lox authors"
	LICENCE = "MIT"
	PROMPT  = "lox >>> "
	BANNER  = `
  ██▓     ▒█████  ▒██   ██▒
 ▓██▒    ▒██▒  ██▒▒▒ █ █ ▒░
 ▒██░    ▒██░  ██▒░░  █   ░
 ▒██░    ▒██   ██░ ░ █ █ ▒
 ░██████▒░ ████▓▒░▒██▒ ▒██▒
 ░ ▒░▓  ░░ ▒░▒░▒░ ▒▒ ░ ░▓ ░
 ░ ░ ▒  ░  ░ ▒ ▒░ ░░   ░▒ ░
   ░ ░   ░ ░ ░ ▒   ░    ░
     ░  ░    ░ ░   ░    ░
`
	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 2 && os.Args[1] != "server" {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] Usage: lox [path] | lox server <port>\n")
		os.Exit(exitUsageError)
	}

	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: lox server <port>\n")
				os.Exit(exitUsageError)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
		}
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("lox - a tree-walking Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                  Start interactive REPL mode")
	yellowColor.Println("  lox <path-to-file>   Execute a Lox source file")
	yellowColor.Println("  lox server <port>    Start REPL server on specified port")
	yellowColor.Println("  lox --help           Display this help message")
	yellowColor.Println("  lox --version        Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                Exit the REPL")
}

func showVersion() {
	cyanColor.Println("lox - a tree-walking Lox interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
}

// runFile reads path, runs it to completion against a fresh interpreter,
// and exits with the code matching the failure phase: 65 for a scan/parse
// error, 70 for a runtime error, 0 otherwise. A file-read failure (the
// path doesn't exist, isn't readable, ...) is reported the same way a
// shell builtin reports a missing file — printed and left at exit 0,
// since nothing was run.
func runFile(path string) {
	source, err := file.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return
	}

	scanner := lexer.NewScanner(source)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(exitDataError)
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		for _, perr := range p.Errors() {
			redColor.Fprintf(os.Stderr, "%s\n", perr)
		}
		os.Exit(exitDataError)
	}

	it := interp.New()
	if err := it.Run(stmts); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(exitSoftware)
	}
}

// startServer listens on port and hands each TCP connection its own
// REPL session and persistent interpreter.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("lox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
