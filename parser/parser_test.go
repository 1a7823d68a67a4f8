/*
File    : golox/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/lexer"
	"github.com/loxlang/golox/object"
)

func parse(t *testing.T, src string) []Stmt {
	t.Helper()
	scanner := lexer.NewScanner(src)
	tokens, err := scanner.ScanTokens()
	require.NoError(t, err)
	p := New(tokens)
	stmts := p.Parse()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return stmts
}

func parseExpr(t *testing.T, src string) Expr {
	t.Helper()
	stmts := parse(t, src+";")
	require.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ExprStmt)
	require.True(t, ok, "expected ExprStmt, got %T", stmts[0])
	return exprStmt.Expression
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	got := parseExpr(t, "1 + 2 * 3")
	want := &Binary{
		Left:     &Literal{Value: object.Number(1)},
		Operator: lexer.Token{Type: lexer.PLUS, Lexeme: "+"},
		Right: &Binary{
			Left:     &Literal{Value: object.Number(2)},
			Operator: lexer.Token{Type: lexer.STAR, Lexeme: "*"},
			Right:    &Literal{Value: object.Number(3)},
		},
	}
	diffAST(t, want, got)
}

func TestParse_GroupingOverridesPrecedence(t *testing.T) {
	got := parseExpr(t, "(1 + 2) * 3")
	bin, ok := got.(*Binary)
	require.True(t, ok)
	_, ok = bin.Left.(*Grouping)
	assert.True(t, ok, "left operand should be a Grouping")
}

func TestParse_UnaryBindsTighterThanBinary(t *testing.T) {
	got := parseExpr(t, "-1 + 2")
	bin, ok := got.(*Binary)
	require.True(t, ok)
	_, ok = bin.Left.(*Unary)
	assert.True(t, ok, "left operand should be a Unary")
}

func TestParse_LogicalAndOrPrecedence(t *testing.T) {
	got := parseExpr(t, "true or false and true")
	logical, ok := got.(*Logical)
	require.True(t, ok)
	assert.Equal(t, lexer.OR, logical.Operator.Type)
	_, ok = logical.Right.(*Logical)
	assert.True(t, ok, "right operand of 'or' should itself be the 'and' expression")
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	got := parseExpr(t, "a = b = 1")
	assign, ok := got.(*Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	_, ok = assign.Value.(*Assign)
	assert.True(t, ok)
}

func TestParse_InvalidAssignmentTargetIsRecordedButExpressionReturned(t *testing.T) {
	scanner := lexer.NewScanner("1 = 2;")
	tokens, err := scanner.ScanTokens()
	require.NoError(t, err)
	p := New(tokens)
	stmts := p.Parse()
	require.Len(t, p.Errors(), 1)
	var perr *ParseError
	require.ErrorAs(t, p.Errors()[0], &perr)
	assert.Equal(t, "invalid_assignment_target", perr.Kind)
	require.Len(t, stmts, 1)
}

func TestParse_CallAndPropertyAccessChain(t *testing.T) {
	got := parseExpr(t, "a.b(1, 2).c")
	get, ok := got.(*Get)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)
	call, ok := get.Object.(*Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts := parse(t, "var x;")
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.Nil(t, v.Initializer)
}

func TestParse_IfElse(t *testing.T) {
	stmts := parse(t, "if (true) print 1; else print 2;")
	require.Len(t, stmts, 1)
	ifStmt, ok := stmts[0].(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	stmts := parse(t, "while (true) print 1;")
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*WhileStmt)
	assert.True(t, ok)
}

func TestParse_ForLoopDesugarsToBlockAndWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 10; i = i + 1) print i;")
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*BlockStmt)
	require.True(t, ok, "for-loop should desugar to a Block")
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*VarStmt)
	assert.True(t, ok, "first statement should be the initializer")

	whileStmt, ok := outer.Statements[1].(*WhileStmt)
	require.True(t, ok, "second statement should be the desugared While")

	body, ok := whileStmt.Body.(*BlockStmt)
	require.True(t, ok, "while body should be a Block containing body+increment")
	require.Len(t, body.Statements, 2)
	_, ok = body.Statements[1].(*ExprStmt)
	assert.True(t, ok, "increment should be appended as an ExprStmt")
}

func TestParse_ForLoopWithOmittedClausesDefaultsConditionToTrue(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	require.Len(t, stmts, 1)
	whileStmt, ok := stmts[0].(*WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*Literal)
	require.True(t, ok)
	assert.Equal(t, object.Bool(true), lit.Value)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts := parse(t, "fun add(a, b) { return a + b; }")
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	require.Len(t, fn.Body, 1)
	_, ok = fn.Body[0].(*ReturnStmt)
	assert.True(t, ok)
}

func TestParse_ClassDeclarationWithMethods(t *testing.T) {
	stmts := parse(t, "class Greeter { hello() { print \"hi\"; } }")
	require.Len(t, stmts, 1)
	class, ok := stmts[0].(*ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Greeter", class.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "hello", class.Methods[0].Name.Lexeme)
}

func TestParse_ThisParsesAsExpressionEverywhere(t *testing.T) {
	got := parseExpr(t, "this")
	_, ok := got.(*This)
	assert.True(t, ok)
}

func TestParse_MissingClosingParenIsReportedAndAnchoredOnOffendingToken(t *testing.T) {
	scanner := lexer.NewScanner("(1 + 2;")
	tokens, err := scanner.ScanTokens()
	require.NoError(t, err)
	p := New(tokens)
	p.Parse()
	require.Len(t, p.Errors(), 1)
	var perr *ParseError
	require.ErrorAs(t, p.Errors()[0], &perr)
	assert.Equal(t, "missing_paren_after_expr", perr.Kind)
	assert.Equal(t, ";", perr.Token.Lexeme)
}

func TestParse_UnexpectedEOFInsideGroupingReportsExpectExpression(t *testing.T) {
	scanner := lexer.NewScanner("(")
	tokens, err := scanner.ScanTokens()
	require.NoError(t, err)
	p := New(tokens)
	p.Parse()
	require.NotEmpty(t, p.Errors())
}

func TestParse_SynchronizeCollectsMultipleIndependentErrors(t *testing.T) {
	src := "var ; var ; print 1;"
	scanner := lexer.NewScanner(src)
	tokens, err := scanner.ScanTokens()
	require.NoError(t, err)
	p := New(tokens)
	stmts := p.Parse()
	assert.Len(t, p.Errors(), 2)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*PrintStmt)
	assert.True(t, ok)
}

func diffAST(t *testing.T, want, got Expr) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.Comparer(tokensEqual)); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func tokensEqual(a, b lexer.Token) bool {
	return a.Type == b.Type && a.Lexeme == b.Lexeme
}
