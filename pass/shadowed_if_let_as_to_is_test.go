package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestShadowedIfLetAsToIsRewritesSelfCast(t *testing.T) {
	p := pass.NewShadowedIfLetAsToIs()
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Declaration: &ast.VariableDeclaration{
			Name: "value",
			Value: &ast.BinaryOpExpression{
				Left:     &ast.DeclarationReferenceExpression{Name: "value"},
				Operator: "as?",
				Right:    &ast.TypeExpression{Name: "Circle"},
			},
		}}},
		Then: []ast.Statement{},
	}
	in := fileWithTopLevel(ifStmt)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.IfStatement)
	cond := got.Conditions[0]
	if cond.Declaration != nil {
		t.Fatalf("expected the declaration replaced by a boolean condition, got %+v", cond.Declaration)
	}
	bin, ok := cond.Expr.(*ast.BinaryOpExpression)
	if !ok || bin.Operator != "is" {
		t.Fatalf("expected an `is` comparison, got %+v", cond.Expr)
	}
}

func TestShadowedIfLetAsToIsLeavesUnrelatedBindingAlone(t *testing.T) {
	p := pass.NewShadowedIfLetAsToIs()
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Declaration: &ast.VariableDeclaration{
			Name:  "value",
			Value: &ast.DeclarationReferenceExpression{Name: "maybeValue"},
		}}},
		Then: []ast.Statement{},
	}
	in := fileWithTopLevel(ifStmt)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.IfStatement)
	if got.Conditions[0].Declaration == nil {
		t.Fatalf("expected a plain optional binding left as a declaration")
	}
}
