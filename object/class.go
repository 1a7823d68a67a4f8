/*
File    : golox/object/class.go
*/
package object

// Class is the value a 'class' declaration binds its name to. Per this
// implementation's scope, a Class is inert: it exists so a program can
// reference the name and print it, but it cannot be instantiated and
// carries no method dispatch (see interp's handling of Get/Set/This).
type Class struct {
	Name    string
	Methods []string
}

func (c *Class) Type() Type { return ClassType }

func (c *Class) String() string {
	return "<class " + c.Name + ">"
}
