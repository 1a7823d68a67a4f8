/*
File    : golox/parser/parser_classes.go

classDecl → "class" IDENTIFIER "{" function* "}"

Method bodies parse exactly like top-level functions (parser_functions.go).
Class declarations are parsed in full, but instantiation and evaluating
'this'/'super' inside a method body are not implemented.
*/
package parser

import "github.com/loxlang/golox/lexer"

func (p *Parser) classDeclaration() Stmt {
	name, ok := p.consume(lexer.IDENTIFIER, "missing_class_name")
	if !ok {
		return nil
	}

	if _, ok := p.consume(lexer.LEFT_BRACE, "missing_brace_before_class_body"); !ok {
		return nil
	}

	var methods []*FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		before := len(p.errors)
		method := p.function("method")
		if len(p.errors) > before {
			p.synchronize()
			continue
		}
		if method != nil {
			methods = append(methods, method)
		}
	}

	if _, ok := p.consume(lexer.RIGHT_BRACE, "missing_brace_after_class_body"); !ok {
		return nil
	}

	return &ClassStmt{Name: name, Methods: methods}
}
