/*
File    : golox/parser/parser_functions.go

funDecl  → "fun" function
function → IDENTIFIER "(" parameters? ")" block
params   → IDENTIFIER ( "," IDENTIFIER )*

function() is also called directly for class methods, which share the
same name/params/body shape but omit the leading "fun" keyword. There is
no cap on the parameter list length.
*/
package parser

import "github.com/loxlang/golox/lexer"

func (p *Parser) function(kind string) *FunctionStmt {
	name, ok := p.consume(lexer.IDENTIFIER, "missing_fun_name", kind)
	if !ok {
		return nil
	}

	if _, ok := p.consume(lexer.LEFT_PAREN, "missing_left_paren_after_fun_name", kind); !ok {
		return nil
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			param, ok := p.consume(lexer.IDENTIFIER, "missing_parameter_name")
			if !ok {
				break
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(lexer.RIGHT_PAREN, "missing_paren_after_params"); !ok {
		return nil
	}

	if _, ok := p.consume(lexer.LEFT_BRACE, "missing_brace_before_body", kind); !ok {
		return nil
	}
	body := p.block()

	return &FunctionStmt{Name: name, Params: params, Body: body}
}
