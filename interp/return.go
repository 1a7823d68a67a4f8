/*
File    : golox/interp/return.go
*/
package interp

import "github.com/loxlang/golox/object"

// returnSignal carries a 'return' statement's value up through the Go
// call stack until it reaches the function invocation that should catch
// it. It implements error only so it can travel through the same
// execute/evaluate return channels as a genuine RuntimeError; callers
// that aren't a function boundary MUST re-propagate it unexamined rather
// than reporting it to the user.
type returnSignal struct {
	Value object.Value
}

func (r *returnSignal) Error() string {
	return "return outside of a function call"
}

func asReturnSignal(err error) (*returnSignal, bool) {
	rs, ok := err.(*returnSignal)
	return rs, ok
}
