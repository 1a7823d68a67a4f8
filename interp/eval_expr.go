/*
File    : golox/interp/eval_expr.go

Expression evaluation, dispatched by a type switch over parser.Expr; see
parser/node.go's doc comment for why this codebase uses a type switch
instead of a Visitor interface.
*/
package interp

import (
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
	"github.com/loxlang/golox/parser"
)

func (it *Interpreter) evaluate(expr parser.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *parser.Literal:
		return e.Value, nil
	case *parser.Grouping:
		return it.evaluate(e.Expression)
	case *parser.Unary:
		return it.evalUnary(e)
	case *parser.Binary:
		return it.evalBinary(e)
	case *parser.Logical:
		return it.evalLogical(e)
	case *parser.Variable:
		v, err := it.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, undefinedVariable(e.Name)
		}
		return v, nil
	case *parser.Assign:
		return it.evalAssign(e)
	case *parser.Call:
		return it.evalCall(e)
	case *parser.Get, *parser.Set, *parser.This:
		return nil, it.invalidClassOperator(e)
	default:
		panic("interp: unhandled expression node")
	}
}

func (it *Interpreter) invalidClassOperator(expr parser.Expr) error {
	var tok lexer.Token
	switch e := expr.(type) {
	case *parser.Get:
		tok = e.Name
	case *parser.Set:
		tok = e.Name
	case *parser.This:
		tok = e.Keyword
	}
	return invalidOperator(tok)
}

func (it *Interpreter) evalUnary(e *parser.Unary) (object.Value, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			return nil, numberExpectedAfterMinus(e.Operator)
		}
		return -n, nil
	case lexer.BANG:
		return object.Bool(!object.Truthy(right)), nil
	default:
		return nil, invalidOperator(e.Operator)
	}
}

func (it *Interpreter) evalBinary(e *parser.Binary) (object.Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	ln, lIsNum := left.(object.Number)
	rn, rIsNum := right.(object.Number)
	if lIsNum && rIsNum {
		return evalNumberBinary(e.Operator, ln, rn)
	}

	ls, lIsStr := left.(object.String)
	rs, rIsStr := right.(object.String)
	if lIsStr && rIsStr {
		return evalStringBinary(e.Operator, ls, rs)
	}

	switch e.Operator.Type {
	case lexer.EQUAL_EQUAL:
		return object.Bool(object.Equal(left, right)), nil
	case lexer.BANG_EQUAL:
		return object.Bool(!object.Equal(left, right)), nil
	default:
		return nil, invalidOperator(e.Operator)
	}
}

func evalNumberBinary(op lexer.Token, l, r object.Number) (object.Value, error) {
	switch op.Type {
	case lexer.PLUS:
		return l + r, nil
	case lexer.MINUS:
		return l - r, nil
	case lexer.STAR:
		return l * r, nil
	case lexer.SLASH:
		return l / r, nil // IEEE-754 division by zero yields inf/nan, not an error.
	case lexer.GREATER:
		return object.Bool(l > r), nil
	case lexer.GREATER_EQUAL:
		return object.Bool(l >= r), nil
	case lexer.LESS:
		return object.Bool(l < r), nil
	case lexer.LESS_EQUAL:
		return object.Bool(l <= r), nil
	case lexer.EQUAL_EQUAL:
		return object.Bool(l == r), nil
	case lexer.BANG_EQUAL:
		return object.Bool(l != r), nil
	default:
		return nil, invalidOperator(op)
	}
}

func evalStringBinary(op lexer.Token, l, r object.String) (object.Value, error) {
	switch op.Type {
	case lexer.PLUS:
		return l + r, nil
	case lexer.EQUAL_EQUAL:
		return object.Bool(l == r), nil
	case lexer.BANG_EQUAL:
		return object.Bool(l != r), nil
	default:
		return nil, invalidOperator(op)
	}
}

func (it *Interpreter) evalLogical(e *parser.Logical) (object.Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == lexer.OR {
		if object.Truthy(left) {
			return left, nil
		}
	} else {
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) evalAssign(e *parser.Assign) (object.Value, error) {
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if _, err := it.env.Assign(e.Name.Lexeme, value); err != nil {
		return nil, undefinedVariable(e.Name)
	}
	return value, nil
}

func (it *Interpreter) evalCall(e *parser.Call) (object.Value, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		v, err := it.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, valueNotCallable(e.Paren, callee)
	}
	if callable.Arity() != len(args) {
		return nil, wrongArity(e.Paren, callable.Arity(), len(args))
	}
	return callable.Call(it, args)
}
