package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/pass"
)

func TestWarnSideEffectsInIfLetsWarnsOnCallBoundValue(t *testing.T) {
	sink := diag.NewSink()
	p := pass.NewWarnSideEffectsInIfLets(sink)
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Declaration: &ast.VariableDeclaration{
			Name:  "value",
			Value: &ast.CallExpression{Callee: &ast.DeclarationReferenceExpression{Name: "fetch"}},
		}}},
		Then: []ast.Statement{},
	}
	in := fileWithTopLevel(ifStmt)
	p.Run(in)
	diags := sink.All()
	if len(diags) != 1 || diags[0].Severity != diag.Warning {
		t.Fatalf("expected one warning for a call-bound if-let, got %v", diags)
	}
}

func TestWarnSideEffectsInIfLetsSilentOnPlainBinding(t *testing.T) {
	sink := diag.NewSink()
	p := pass.NewWarnSideEffectsInIfLets(sink)
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Declaration: &ast.VariableDeclaration{
			Name:  "value",
			Value: &ast.DeclarationReferenceExpression{Name: "maybeValue"},
		}}},
		Then: []ast.Statement{},
	}
	in := fileWithTopLevel(ifStmt)
	p.Run(in)
	if len(sink.All()) != 0 {
		t.Fatalf("expected no warnings for a plain binding, got %v", sink.All())
	}
}
