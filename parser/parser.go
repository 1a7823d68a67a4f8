/*
File    : golox/parser/parser.go

Package parser implements a recursive-descent parser for Lox: precedence
climbing from assignment down to primary. There is no operator-precedence
function table; each precedence level is its own method, matching the
grammar productions one-to-one rather than threading a table through a
single generic expression function.

The parser never panics on a malformed program; it collects one
ParseError per expected-token violation and resynchronizes at the next
statement boundary so a single pass can report several independent
errors instead of stopping at the first one.
*/
package parser

import (
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
)

// trueValue backs a desugared for-loop's implicit "no condition means
// loop forever" clause.
var trueValue = object.Bool(true)

// Parser holds the token stream and parse position plus the accumulated
// errors for one Parse() call.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []error
}

// New wraps an already-scanned token stream (see lexer.Scanner) for
// parsing. Scan errors are handled by the caller before Parser ever sees
// the tokens; by the time a Parser exists, the input is known to be
// lexically valid.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream and returns the program's
// statement list. Call Errors() afterward to check for parse failures;
// a non-empty error list means the returned statements may be partial or
// nil and must not be evaluated.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		before := len(p.errors)
		stmt := p.declaration()
		if len(p.errors) > before {
			p.synchronize()
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Errors returns every ParseError collected during the most recent Parse
// call, in source order.
func (p *Parser) Errors() []error {
	return p.errors
}

func (p *Parser) error(tok lexer.Token, kind string, detail ...string) {
	d := ""
	if len(detail) > 0 {
		d = detail[0]
	}
	p.errors = append(p.errors, &ParseError{Kind: kind, Token: tok, Detail: d})
}

// --- token cursor primitives ---

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(typ lexer.TokenType) bool {
	if p.isAtEnd() {
		return typ == lexer.EOF
	}
	return p.peek().Type == typ
}

// match advances past the current token and reports true if it is one of
// the given types; otherwise leaves the cursor untouched.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type, or records a ParseError
// of the given kind anchored on the current (offending) token.
func (p *Parser) consume(typ lexer.TokenType, kind string, detail ...string) (lexer.Token, bool) {
	if p.check(typ) {
		return p.advance(), true
	}
	p.error(p.peek(), kind, detail...)
	return lexer.Token{}, false
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so a single declaration's failure doesn't cascade into
// spurious errors for the rest of the program.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
