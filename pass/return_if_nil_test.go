package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestReturnIfNilRewritesSingleStatementGuardShape(t *testing.T) {
	p := pass.NewReturnIfNil()
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{
			{Expr: &ast.BinaryOpExpression{
				Left:     &ast.DeclarationReferenceExpression{Name: "x"},
				Operator: "==",
				Right:    &ast.NilLiteral{},
			}},
		},
		Then: []ast.Statement{
			&ast.ReturnStatement{Value: &ast.IntLiteral{Value: 0}},
		},
	}
	in := fileWithTopLevel(ifStmt)
	out := p.Run(in)

	exprStmt, ok := out.TopLevel[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected expression statement, got %#v", out.TopLevel[0])
	}
	bin, ok := exprStmt.Expr.(*ast.BinaryOpExpression)
	if !ok || bin.Operator != "?:" {
		t.Fatalf("expected ?: expression, got %#v", exprStmt.Expr)
	}
	ref, ok := bin.Left.(*ast.DeclarationReferenceExpression)
	if !ok || ref.Name != "x" {
		t.Fatalf("expected left operand x, got %#v", bin.Left)
	}
	retExpr, ok := bin.Right.(*ast.ReturnExpression)
	if !ok {
		t.Fatalf("expected return expression on the right, got %#v", bin.Right)
	}
	lit, ok := retExpr.Value.(*ast.IntLiteral)
	if !ok || lit.Value != 0 {
		t.Fatalf("expected the original return value preserved, got %#v", retExpr.Value)
	}
}

func TestReturnIfNilLeavesMultiStatementBodyAlone(t *testing.T) {
	p := pass.NewReturnIfNil()
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{
			{Expr: &ast.BinaryOpExpression{
				Left:     &ast.DeclarationReferenceExpression{Name: "x"},
				Operator: "==",
				Right:    &ast.NilLiteral{},
			}},
		},
		Then: []ast.Statement{
			&ast.ExpressionStatement{Expr: &ast.DeclarationReferenceExpression{Name: "log"}},
			&ast.ReturnStatement{Value: &ast.IntLiteral{Value: 0}},
		},
	}
	in := fileWithTopLevel(ifStmt)
	out := p.Run(in)
	if _, ok := out.TopLevel[0].(*ast.IfStatement); !ok {
		t.Fatalf("expected if statement preserved, got %#v", out.TopLevel[0])
	}
}

func TestReturnIfNilLeavesGuardsAlone(t *testing.T) {
	p := pass.NewReturnIfNil()
	ifStmt := &ast.IfStatement{
		IsGuard: true,
		Conditions: []ast.IfCondition{
			{Expr: &ast.BinaryOpExpression{
				Left:     &ast.DeclarationReferenceExpression{Name: "x"},
				Operator: "==",
				Right:    &ast.NilLiteral{},
			}},
		},
		Then: []ast.Statement{
			&ast.ReturnStatement{Value: &ast.IntLiteral{Value: 0}},
		},
	}
	in := fileWithTopLevel(ifStmt)
	out := p.Run(in)
	if _, ok := out.TopLevel[0].(*ast.IfStatement); !ok {
		t.Fatalf("expected guard if statement preserved, got %#v", out.TopLevel[0])
	}
}
