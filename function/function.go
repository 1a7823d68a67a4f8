/*
File    : golox/function/function.go

Package function implements Lox's user-defined function value: an
object.Callable whose Call asks the interpreter (via object.Runtime) to
run its body against a fresh environment chained off the one it closed
over.
*/
package function

import (
	"fmt"

	"github.com/loxlang/golox/environment"
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
	"github.com/loxlang/golox/parser"
)

// UserFunction is a Lox function value: its declared parameter names,
// its body statements, and the environment in which it was declared —
// captured by reference so it can see (and mutate) that scope's later
// changes, which is what makes closures observe mutation of shared
// state.
type UserFunction struct {
	Name    string
	Params  []lexer.Token
	Body    []parser.Stmt
	Closure *environment.Environment
}

// New wraps a parsed function declaration together with the environment
// active at the point of declaration.
func New(decl *parser.FunctionStmt, closure *environment.Environment) *UserFunction {
	return &UserFunction{
		Name:    decl.Name.Lexeme,
		Params:  decl.Params,
		Body:    decl.Body,
		Closure: closure,
	}
}

func (f *UserFunction) Type() object.Type { return object.CallableType }

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

func (f *UserFunction) Arity() int {
	return len(f.Params)
}

// Call delegates to rt.CallFunction, which binds Params to args in a
// fresh environment chained off Closure and executes Body — see
// interp.Interpreter.CallFunction for the unwind-on-return handling.
func (f *UserFunction) Call(rt object.Runtime, args []object.Value) (object.Value, error) {
	return rt.CallFunction(f, args)
}
