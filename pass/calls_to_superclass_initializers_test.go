package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/pass"
)

func superInitStatement(args ...ast.CallArgument) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{
		Expr: &ast.CallExpression{
			Callee: &ast.DotExpression{
				Receiver: &ast.DeclarationReferenceExpression{Name: "super"},
				Member:   "init",
			},
			Arguments: args,
		},
	}
}

func TestCallsToSuperclassInitializersHoistsSingleCall(t *testing.T) {
	sink := diag.NewSink()
	p := pass.NewCallsToSuperclassInitializers(sink)
	init := &ast.InitializerDeclaration{
		Body: []ast.Statement{
			superInitStatement(ast.CallArgument{Value: &ast.IntLiteral{Value: 1}}),
			&ast.ExpressionStatement{Expr: &ast.DeclarationReferenceExpression{Name: "setup"}},
		},
	}
	in := fileWithTopLevel(init)
	out := p.Run(in)

	got := out.TopLevel[0].(*ast.InitializerDeclaration)
	if got.SuperCall == nil {
		t.Fatalf("expected SuperCall to be set")
	}
	if len(got.Body) != 1 {
		t.Fatalf("expected super.init call removed from body, got %d statements", len(got.Body))
	}
	if len(sink.All()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", sink.All())
	}
}

func TestCallsToSuperclassInitializersWarnsOnMultipleCalls(t *testing.T) {
	sink := diag.NewSink()
	p := pass.NewCallsToSuperclassInitializers(sink)
	init := &ast.InitializerDeclaration{
		Body: []ast.Statement{
			superInitStatement(),
			superInitStatement(),
		},
	}
	in := fileWithTopLevel(init)
	out := p.Run(in)

	got := out.TopLevel[0].(*ast.InitializerDeclaration)
	if got.SuperCall != nil {
		t.Fatalf("expected SuperCall left unset when ambiguous")
	}
	if len(got.Body) != 2 {
		t.Fatalf("expected initializer body left unchanged, got %d statements", len(got.Body))
	}
	diags := sink.All()
	if len(diags) != 1 || diags[0].Severity != diag.Warning {
		t.Fatalf("expected exactly one warning, got %v", diags)
	}
}

func TestCallsToSuperclassInitializersLeavesInitWithoutSuperCallAlone(t *testing.T) {
	sink := diag.NewSink()
	p := pass.NewCallsToSuperclassInitializers(sink)
	init := &ast.InitializerDeclaration{
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expr: &ast.DeclarationReferenceExpression{Name: "setup"}},
		},
	}
	in := fileWithTopLevel(init)
	out := p.Run(in)

	got := out.TopLevel[0].(*ast.InitializerDeclaration)
	if got.SuperCall != nil {
		t.Fatalf("expected no super call recorded")
	}
	if len(got.Body) != 1 {
		t.Fatalf("expected body unchanged, got %d statements", len(got.Body))
	}
}
