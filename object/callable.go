/*
File    : golox/object/callable.go
*/
package object

// Runtime is the capability surface a Callable needs from the interpreter
// to invoke itself: running a user function's body against a fresh scope.
// This interface — rather than a direct
// dependency on the interp package — is what lets object stay independent
// of interp while interp's Interpreter satisfies it, avoiding an import
// cycle between the two packages.
type Runtime interface {
	// CallFunction invokes a user-defined function with already-evaluated
	// arguments and returns its result. Native functions run their Go
	// closure directly and do not go through it.
	CallFunction(fn Callable, args []Value) (Value, error)
}

// Callable is any Value that can be invoked with an evaluated argument
// list: native builtins (clock) and user-defined functions.
type Callable interface {
	Value
	// Arity is the number of arguments this callable expects.
	Arity() int
	// Call executes the callable against rt with already-evaluated args.
	// rt is threaded through so a native function can, in principle,
	// call back into user code (no builtin currently needs to).
	Call(rt Runtime, args []Value) (Value, error)
}

// NativeFunction wraps a Go function as a Lox Callable, used for clock and
// any other builtin with no Lox-level body or captured environment.
type NativeFunction struct {
	Name string
	Arg  int
	Fn   func(rt Runtime, args []Value) (Value, error)
}

func (n *NativeFunction) Type() Type     { return CallableType }
func (n *NativeFunction) String() string { return "<native fn " + n.Name + ">" }
func (n *NativeFunction) Arity() int     { return n.Arg }

func (n *NativeFunction) Call(rt Runtime, args []Value) (Value, error) {
	return n.Fn(rt, args)
}
