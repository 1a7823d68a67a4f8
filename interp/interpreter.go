/*
File    : golox/interp/interpreter.go

Package interp is the tree-walking evaluator. Its Interpreter holds the
one piece of state that outlives a single Run call in a REPL session:
the global environment. Statement and expression evaluation live in
eval_stmt.go / eval_expr.go; this file has the constructor, Run/RunLine
entry points, and the user-function invocation path (object.Runtime).
*/
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/loxlang/golox/environment"
	"github.com/loxlang/golox/function"
	"github.com/loxlang/golox/object"
	"github.com/loxlang/golox/parser"
)

// Interpreter executes a parsed Lox program against a persistent global
// environment, writing Print output to Stdout.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Stdout  io.Writer
}

// New constructs an interpreter with clock pre-bound in the global
// environment.
func New() *Interpreter {
	globals := environment.New(nil)
	it := &Interpreter{Globals: globals, env: globals, Stdout: os.Stdout}
	registerBuiltins(globals)
	return it
}

// Run executes a full program (one REPL line or one whole file) against
// the interpreter's persistent environment, discarding any value the
// statements produce. A returned *RuntimeError means evaluation stopped
// early, but the environment itself survives for the next Run or
// RunLine call in the same session.
func (it *Interpreter) Run(stmts []parser.Stmt) error {
	_, err := it.run(stmts, false)
	return err
}

// RunLine executes stmts the same way Run does, but additionally
// reports the value of a trailing bare expression statement — the
// result a REPL should echo back to the user, e.g. typing "1 + 2;"
// should print 3 even though nothing asked for it to be printed. The
// returned Value is nil (the Go interface, not object.Nil) whenever the
// last statement run was not an expression statement, so the caller can
// tell "nothing to echo" apart from "the expression evaluated to Lox's
// nil".
func (it *Interpreter) RunLine(stmts []parser.Stmt) (object.Value, error) {
	return it.run(stmts, true)
}

func (it *Interpreter) run(stmts []parser.Stmt, captureLastExpr bool) (object.Value, error) {
	var last object.Value
	for _, stmt := range stmts {
		exprStmt, isExpr := stmt.(*parser.ExprStmt)
		if captureLastExpr && isExpr {
			v, err := it.evaluate(exprStmt.Expression)
			if err != nil {
				if _, ok := asReturnSignal(err); ok {
					return nil, nil
				}
				return nil, err
			}
			last = v
			continue
		}

		last = nil
		if err := it.execute(stmt); err != nil {
			if _, ok := asReturnSignal(err); ok {
				// A top-level 'return' outside any function: treat it
				// as simply ending the run the way falling off the end
				// would, rather than reporting it as an error.
				return nil, nil
			}
			return nil, err
		}
	}
	return last, nil
}

// CallFunction implements object.Runtime. It is only ever reached via
// UserFunction.Call (NativeFunction.Call runs its Go closure directly
// without calling back into the runtime): it binds params in a fresh
// environment chained off the function's closure and executes the body,
// catching the function's own returnSignal.
func (it *Interpreter) CallFunction(fn object.Callable, args []object.Value) (object.Value, error) {
	userFn, ok := fn.(*function.UserFunction)
	if !ok {
		return nil, fmt.Errorf("CallFunction called with unexpected callable type %T", fn)
	}

	callEnv := environment.New(userFn.Closure)
	for i, param := range userFn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	previous := it.env
	it.env = callEnv
	defer func() { it.env = previous }()

	for _, stmt := range userFn.Body {
		err := it.execute(stmt)
		if err == nil {
			continue
		}
		if rs, ok := asReturnSignal(err); ok {
			return rs.Value, nil
		}
		return nil, err
	}
	return object.Nil{}, nil
}

func (it *Interpreter) print(v object.Value) {
	fmt.Fprintln(it.Stdout, v.String())
}
