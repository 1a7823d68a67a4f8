/*
File    : golox/interp/errors.go

Runtime error taxonomy. Each variant carries the token that anchors it
so the renderer can report a line number alongside the message.
*/
package interp

import (
	"fmt"

	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
)

// RuntimeError is the common shape of every user-visible evaluation
// failure: a message plus the token whose line it should be reported
// against.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(tok lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

func invalidOperator(tok lexer.Token) *RuntimeError {
	return newRuntimeError(tok, "Invalid operator '%s' for operand types.", tok.Lexeme)
}

func numberExpectedAfterMinus(tok lexer.Token) *RuntimeError {
	return newRuntimeError(tok, "Operand must be a number.")
}

func undefinedVariable(tok lexer.Token) *RuntimeError {
	return newRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

func valueNotCallable(tok lexer.Token, v object.Value) *RuntimeError {
	return newRuntimeError(tok, "Can only call functions and classes, not %s.", object.Inspect(v))
}

func wrongArity(tok lexer.Token, expected, actual int) *RuntimeError {
	return newRuntimeError(tok, "Expected %d arguments but got %d.", expected, actual)
}
