/*
File    : golox/parser/parser_statements.go

declaration → classDecl | funDecl | varDecl | statement
statement   → forStmt | ifStmt | printStmt | returnStmt
            | whileStmt | block | exprStmt
*/
package parser

import "github.com/loxlang/golox/lexer"

// declaration parses one top-level-or-block entry. Parse()'s loop (and
// block()'s, for nested declarations) resynchronizes on a fresh error, so
// every early-return here simply returns nil on failure.
func (p *Parser) declaration() Stmt {
	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() Stmt {
	name, ok := p.consume(lexer.IDENTIFIER, "missing_var_name")
	if !ok {
		return nil
	}

	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	if _, ok := p.consume(lexer.SEMICOLON, "missing_semicolon_after_var"); !ok {
		return nil
	}
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	if _, ok := p.consume(lexer.SEMICOLON, "missing_semicolon_after_value"); !ok {
		return nil
	}
	return &PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.consume(lexer.SEMICOLON, "missing_semicolon_after_return"); !ok {
		return nil
	}
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	if _, ok := p.consume(lexer.SEMICOLON, "missing_semicolon_after_expr"); !ok {
		return nil
	}
	return &ExprStmt{Expression: expr}
}

// block parses '{' declaration* '}', assuming the opening brace is already
// consumed. Each nested declaration resynchronizes on its own failure,
// exactly like the top-level Parse loop.
func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
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
	p.consume(lexer.RIGHT_BRACE, "missing_brace_after_block")
	return stmts
}
