/*
File    : golox/interp/eval_stmt.go

Statement execution, dispatched by a type switch over parser.Stmt.
*/
package interp

import (
	"github.com/loxlang/golox/environment"
	"github.com/loxlang/golox/function"
	"github.com/loxlang/golox/object"
	"github.com/loxlang/golox/parser"
)

func (it *Interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		_, err := it.evaluate(s.Expression)
		return err
	case *parser.PrintStmt:
		return it.execPrint(s)
	case *parser.VarStmt:
		return it.execVar(s)
	case *parser.BlockStmt:
		return it.executeBlock(s.Statements, environment.New(it.env))
	case *parser.IfStmt:
		return it.execIf(s)
	case *parser.WhileStmt:
		return it.execWhile(s)
	case *parser.FunctionStmt:
		return it.execFunction(s)
	case *parser.ReturnStmt:
		return it.execReturn(s)
	case *parser.ClassStmt:
		return it.execClass(s)
	default:
		panic("interp: unhandled statement node")
	}
}

func (it *Interpreter) execPrint(s *parser.PrintStmt) error {
	v, err := it.evaluate(s.Expression)
	if err != nil {
		return err
	}
	it.print(v)
	return nil
}

func (it *Interpreter) execVar(s *parser.VarStmt) error {
	var value object.Value = object.Nil{}
	if s.Initializer != nil {
		v, err := it.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	it.env.Define(s.Name.Lexeme, value)
	return nil
}

// executeBlock runs stmts against blockEnv, always restoring the
// interpreter's previous environment on exit — normal completion,
// runtime error, or return unwind alike.
func (it *Interpreter) executeBlock(stmts []parser.Stmt, blockEnv *environment.Environment) error {
	previous := it.env
	it.env = blockEnv
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execIf(s *parser.IfStmt) error {
	cond, err := it.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if object.Truthy(cond) {
		return it.execute(s.Then)
	}
	if s.Else != nil {
		return it.execute(s.Else)
	}
	return nil
}

func (it *Interpreter) execWhile(s *parser.WhileStmt) error {
	for {
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !object.Truthy(cond) {
			return nil
		}
		if err := it.execute(s.Body); err != nil {
			return err
		}
	}
}

func (it *Interpreter) execFunction(s *parser.FunctionStmt) error {
	fn := function.New(s, it.env)
	it.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (it *Interpreter) execReturn(s *parser.ReturnStmt) error {
	var value object.Value = object.Nil{}
	if s.Value != nil {
		v, err := it.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{Value: value}
}

func (it *Interpreter) execClass(s *parser.ClassStmt) error {
	names := make([]string, len(s.Methods))
	for i, m := range s.Methods {
		names[i] = m.Name.Lexeme
	}
	it.env.Define(s.Name.Lexeme, &object.Class{Name: s.Name.Lexeme, Methods: names})
	return nil
}
