/*
File    : golox/environment/environment.go

Package environment implements the nested name→value binding chain used
for variable scoping and closures: define, get, and assign over a chain
of parent-linked scopes.
*/
package environment

import (
	"fmt"

	"github.com/loxlang/golox/object"
)

// UndefinedVariableError reports a get/assign against a name no
// enclosing environment defines.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one lexical scope: a binding map plus an optional link
// to the enclosing scope it shadows.
type Environment struct {
	values map[string]object.Value
	parent *Environment
}

// New constructs a scope nested inside parent. parent == nil makes this
// the global environment.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), parent: parent}
}

// Define inserts or overwrites a binding in this environment only; it
// never walks the parent chain, so redeclaring a name (permitted at the
// top level, including in a REPL session) simply shadows or overwrites.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get resolves name in this environment or, failing that, the nearest
// enclosing one that defines it.
func (e *Environment) Get(name string) (object.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign mutates the nearest enclosing definition of name in place and
// returns the value it held before the assignment, so a caller can use
// an assignment expression's old value without a separate lookup.
func (e *Environment) Assign(name string, value object.Value) (object.Value, error) {
	if prev, ok := e.values[name]; ok {
		e.values[name] = value
		return prev, nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return nil, &UndefinedVariableError{Name: name}
}
