/*
File    : golox/parser/errors.go
*/
package parser

import (
	"fmt"

	"github.com/loxlang/golox/lexer"
)

// ParseError names one expected-token violation: which construct expected
// what, and the offending token (for line + lexeme). Kind is a stable,
// machine-checkable tag; the rendered Error() string is what reaches the
// user.
type ParseError struct {
	Kind   string
	Token  lexer.Token
	Detail string // e.g. "function" / "method", when Kind needs it
}

func (e *ParseError) Error() string {
	where := "at end"
	if e.Token.Type != lexer.EOF {
		where = fmt.Sprintf("at '%s'", e.Token.Lexeme)
	}
	msg := e.message()
	return fmt.Sprintf("[line %d] Error %s: %s", e.Token.Line, where, msg)
}

func (e *ParseError) message() string {
	switch e.Kind {
	case "missing_paren_after_expr":
		return "Expect ')' after expression."
	case "missing_paren_after_if_condition":
		return "Expect ')' after if condition."
	case "missing_paren_after_while_condition":
		return "Expect ')' after while condition."
	case "missing_paren_after_for_clauses":
		return "Expect ')' after for clauses."
	case "missing_paren_after_arguments":
		return "Expect ')' after arguments."
	case "missing_paren_after_params":
		return "Expect ')' after parameters."
	case "missing_left_paren_after_if":
		return "Expect '(' after 'if'."
	case "missing_left_paren_after_while":
		return "Expect '(' after 'while'."
	case "missing_left_paren_after_for":
		return "Expect '(' after 'for'."
	case "missing_left_paren_after_fun_name":
		return fmt.Sprintf("Expect '(' after %s name.", e.Detail)
	case "missing_semicolon_after_value":
		return "Expect ';' after value."
	case "missing_semicolon_after_expr":
		return "Expect ';' after expression."
	case "missing_semicolon_after_var":
		return "Expect ';' after variable declaration."
	case "missing_semicolon_after_return":
		return "Expect ';' after return value."
	case "missing_semicolon_after_loop_condition":
		return "Expect ';' after loop condition."
	case "missing_var_name":
		return "Expect variable name."
	case "missing_brace_before_body":
		return fmt.Sprintf("Expect '{' before %s body.", e.Detail)
	case "missing_brace_after_block":
		return "Expect '}' after block."
	case "missing_brace_after_class_body":
		return "Expect '}' after class body."
	case "missing_brace_before_class_body":
		return "Expect '{' before class body."
	case "missing_class_name":
		return "Expect class name."
	case "missing_fun_name":
		return fmt.Sprintf("Expect %s name.", e.Detail)
	case "missing_parameter_name":
		return "Expect parameter name."
	case "missing_property_name":
		return "Expect property name after '.'."
	case "invalid_assignment_target":
		return "Invalid assignment target."
	case "expect_expression":
		return "Expect expression."
	default:
		return e.Kind
	}
}
