/*
File    : golox/parser/parser_expressions.go

Precedence climbing, one method per grammar level:

	expression → assignment
	logic_or    → logic_and ( "or" logic_and )*
	logic_and   → equality ( "and" equality )*
	equality    → comparison ( ( "!=" | "==" ) comparison )*
	comparison  → term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term        → factor ( ( "-" | "+" ) factor )*
	factor      → unary ( ( "/" | "*" ) unary )*
	unary       → ( "!" | "-" ) unary | call
	call        → primary ( "(" arguments? ")" | "." IDENTIFIER )*
*/
package parser

import "github.com/loxlang/golox/lexer"

func (p *Parser) expression() Expr {
	return p.assignment()
}

func (p *Parser) or_() Expr {
	expr := p.and_()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and_()
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and_() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &Unary{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name, ok := p.consume(lexer.IDENTIFIER, "missing_property_name")
			if !ok {
				return expr
			}
			expr = &Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, ok := p.consume(lexer.RIGHT_PAREN, "missing_paren_after_arguments")
	if !ok {
		return &Call{Callee: callee, Paren: p.peek(), Args: args}
	}
	return &Call{Callee: callee, Paren: paren, Args: args}
}
