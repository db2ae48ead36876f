package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestReturnsInLambdasConvertsReturnInsideClosure(t *testing.T) {
	p := pass.NewReturnsInLambdas()
	closure := &ast.ClosureExpression{
		Body: []ast.Statement{
			&ast.ReturnStatement{Value: &ast.IntLiteral{Value: 1}},
		},
	}
	in := fileWithTopLevel(&ast.ExpressionStatement{Expr: closure})
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.ClosureExpression)
	exprStmt, ok := got.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected return converted to an expression statement, got %#v", got.Body[0])
	}
	lit, ok := exprStmt.Expr.(*ast.IntLiteral)
	if !ok || lit.Value != 1 {
		t.Fatalf("expected the return value preserved, got %#v", exprStmt.Expr)
	}
}

func TestReturnsInLambdasLeavesTopLevelReturnAlone(t *testing.T) {
	p := pass.NewReturnsInLambdas()
	fn := &ast.FunctionDeclaration{
		Name: "f",
		Body: []ast.Statement{
			&ast.ReturnStatement{Value: &ast.IntLiteral{Value: 1}},
		},
	}
	in := fileWithTopLevel(fn)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.FunctionDeclaration)
	if _, ok := got.Body[0].(*ast.ReturnStatement); !ok {
		t.Fatalf("expected function-level return left untouched, got %#v", got.Body[0])
	}
}

func TestReturnsInLambdasLeavesBareReturnAlone(t *testing.T) {
	p := pass.NewReturnsInLambdas()
	closure := &ast.ClosureExpression{
		Body: []ast.Statement{&ast.ReturnStatement{}},
	}
	in := fileWithTopLevel(&ast.ExpressionStatement{Expr: closure})
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.ClosureExpression)
	if _, ok := got.Body[0].(*ast.ReturnStatement); !ok {
		t.Fatalf("expected bare return left as a return statement, got %#v", got.Body[0])
	}
}
