/*
File    : golox/parser/parser_conditionals.go

ifStmt → "if" "(" expression ")" statement ( "else" statement )?
*/
package parser

import "github.com/loxlang/golox/lexer"

func (p *Parser) ifStatement() Stmt {
	if _, ok := p.consume(lexer.LEFT_PAREN, "missing_left_paren_after_if"); !ok {
		return nil
	}
	condition := p.expression()
	if _, ok := p.consume(lexer.RIGHT_PAREN, "missing_paren_after_if_condition"); !ok {
		return nil
	}

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}

	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}
