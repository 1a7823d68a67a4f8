/*
File    : golox/parser/parser_assignments.go

assignment → ( call "." )? IDENTIFIER "=" assignment | logic_or
*/
package parser

import "github.com/loxlang/golox/lexer"

func (p *Parser) assignment() Expr {
	expr := p.or_()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *Variable:
			return &Assign{Name: target.Name, Value: value}
		case *Get:
			return &Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.error(equals, "invalid_assignment_target")
			return expr
		}
	}

	return expr
}
