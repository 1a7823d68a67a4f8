/*
File    : golox/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/golox/environment"
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
	"github.com/loxlang/golox/parser"
)

func TestNew_CapturesNameArityAndClosure(t *testing.T) {
	env := environment.New(nil)
	decl := &parser.FunctionStmt{
		Name:   lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "add"},
		Params: []lexer.Token{{Type: lexer.IDENTIFIER, Lexeme: "a"}, {Type: lexer.IDENTIFIER, Lexeme: "b"}},
	}

	fn := New(decl, env)

	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, 2, fn.Arity())
	assert.Same(t, env, fn.Closure)
	assert.Equal(t, object.CallableType, fn.Type())
	assert.Equal(t, "<fn add>", fn.String())
}

type stubRuntime struct {
	called  bool
	gotArgs []object.Value
}

func (s *stubRuntime) CallFunction(fn object.Callable, args []object.Value) (object.Value, error) {
	s.called = true
	s.gotArgs = args
	return object.Nil{}, nil
}

func TestCall_DelegatesToRuntime(t *testing.T) {
	fn := New(&parser.FunctionStmt{Name: lexer.Token{Lexeme: "f"}}, environment.New(nil))
	rt := &stubRuntime{}

	_, err := fn.Call(rt, []object.Value{object.Number(1)})

	assert.NoError(t, err)
	assert.True(t, rt.called)
	assert.Equal(t, []object.Value{object.Number(1)}, rt.gotArgs)
}
