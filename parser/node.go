/*
File    : golox/parser/node.go

Package parser converts a token sequence into an ordered list of Lox
statement trees via recursive-descent parsing.

AST node types are a closed set of small structs behind two marker
interfaces (Expr, Stmt) rather than the visitor-dispatch style used
elsewhere in this codebase's ancestry: the interpreter walks them with a
plain Go type switch, mirroring how the Rust source this design is
grounded on matches its Expr/Stmt enums (see original_source/src/expr.rs,
stmt.rs) — a type switch is the direct idiomatic-Go translation of that
match, and Lox's AST is small enough that a second parallel
Visit-method-per-type interface would only duplicate the type switch.
*/
package parser

import (
	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
)

// Expr is any Lox expression node.
type Expr interface {
	exprNode()
}

// Stmt is any Lox statement node.
type Stmt interface {
	stmtNode()
}

// Literal is a literal value baked directly into the AST by the parser
// (numbers, strings, true/false, nil).
type Literal struct {
	Value object.Value
}

// Grouping is a parenthesized expression: '(' expr ')'. Transparent at
// evaluation time.
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operator application: '-' or '!' followed by an
// operand.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Binary is an infix arithmetic/comparison/equality operator application.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Logical is 'and'/'or', kept distinct from Binary so the interpreter can
// short-circuit without inspecting the operator token.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name lexer.Token
}

// Assign is a name assignment: IDENT '=' expr.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Call is a function/method invocation: callee '(' args ')'.
type Call struct {
	Callee Expr
	Paren  lexer.Token // the closing ')', used to anchor runtime errors
	Args   []Expr
}

// Get reads a field or method off an object: object '.' name.
type Get struct {
	Object Expr
	Name   lexer.Token
}

// Set writes a field on an object: object '.' name '=' value.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// This is the 'this' keyword. Parsed everywhere an expression is legal;
// rejected only at evaluation time, since classes here have no instances
// for 'this' to bind to.
type This struct {
	Keyword lexer.Token
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its display form.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a variable, optionally with an initializer expression.
// Initializer is nil when the declaration has none ('var x;').
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt introduces a new lexical scope around its statements.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is a conditional. Else is nil when there is no else-branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt is a condition-guarded loop. The parser desugars 'for' into
// this node plus a Block; the interpreter has no 'for' node at all.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a function (top-level or a class method).
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt unwinds the enclosing function call with an optional value
// (nil Value means implicit 'return nil;').
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

// ClassStmt declares a class with zero or more methods. Method bodies are
// parsed fully; binding 'this' and instantiating fields is out of scope.
type ClassStmt struct {
	Name    lexer.Token
	Methods []*FunctionStmt
}

func (*ExprStmt) stmtNode()     {}
func (*PrintStmt) stmtNode()    {}
func (*VarStmt) stmtNode()      {}
func (*BlockStmt) stmtNode()    {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*ClassStmt) stmtNode()    {}
