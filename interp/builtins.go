/*
File    : golox/interp/builtins.go

Native builtins pre-bound into the global environment: one NativeFunction
value per name, defined directly rather than through a lookup table,
since Lox only has the one.
*/
package interp

import (
	"time"

	"github.com/loxlang/golox/environment"
	"github.com/loxlang/golox/object"
)

func registerBuiltins(globals *environment.Environment) {
	globals.Define("clock", &object.NativeFunction{
		Name: "clock",
		Arg:  0,
		Fn: func(rt object.Runtime, args []object.Value) (object.Value, error) {
			return object.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
