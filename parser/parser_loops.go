/*
File    : golox/parser/parser_loops.go

whileStmt → "while" "(" expression ")" statement
forStmt   → "for" "(" ( varDecl | exprStmt | ";" )
                      expression? ";"
                      expression? ")" statement

There is no For AST node: the parser desugars directly into the While
node plus a Block, so the interpreter only ever deals with While.
*/
package parser

import "github.com/loxlang/golox/lexer"

func (p *Parser) whileStatement() Stmt {
	if _, ok := p.consume(lexer.LEFT_PAREN, "missing_left_paren_after_while"); !ok {
		return nil
	}
	condition := p.expression()
	if _, ok := p.consume(lexer.RIGHT_PAREN, "missing_paren_after_while_condition"); !ok {
		return nil
	}
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) forStatement() Stmt {
	if _, ok := p.consume(lexer.LEFT_PAREN, "missing_left_paren_after_for"); !ok {
		return nil
	}

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	if _, ok := p.consume(lexer.SEMICOLON, "missing_semicolon_after_loop_condition"); !ok {
		return nil
	}

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	if _, ok := p.consume(lexer.RIGHT_PAREN, "missing_paren_after_for_clauses"); !ok {
		return nil
	}

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExprStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &Literal{Value: trueValue}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}

	return body
}
