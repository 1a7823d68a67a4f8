/*
File    : golox/parser/parser_literals.go

primary → NUMBER | STRING | "true" | "false" | "nil" | "this"
        | IDENTIFIER | "(" expression ")"
*/
package parser

import (
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
)

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &Literal{Value: object.Bool(false)}
	case p.match(lexer.TRUE):
		return &Literal{Value: object.Bool(true)}
	case p.match(lexer.NIL):
		return &Literal{Value: object.Nil{}}
	case p.match(lexer.NUMBER):
		return &Literal{Value: object.Number(p.previous().Number)}
	case p.match(lexer.STRING):
		return &Literal{Value: object.String(p.previous().Str)}
	case p.match(lexer.THIS):
		return &This{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "missing_paren_after_expr")
		return &Grouping{Expression: expr}
	default:
		p.error(p.peek(), "expect_expression")
		// Advance so the caller's synchronize() doesn't spin forever on a
		// token that can never start a primary expression.
		p.advance()
		return &Literal{Value: object.Nil{}}
	}
}
