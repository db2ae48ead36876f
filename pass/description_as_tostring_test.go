package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestDescriptionAsToStringRewritesGetterOnlyProperty(t *testing.T) {
	p := pass.NewDescriptionAsToString()
	v := &ast.VariableDeclaration{
		Name:      "description",
		HasGetter: true,
		Getter:    []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "a point"}}},
	}
	in := fileWithTopLevel(v)
	out := p.Run(in)
	fn, ok := out.TopLevel[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected a rewritten toString function, got %T", out.TopLevel[0])
	}
	if fn.Name != "toString" || fn.ReturnType != "String" {
		t.Fatalf("unexpected function: %+v", fn)
	}
}

func TestDescriptionAsToStringLeavesSettableDescriptionAlone(t *testing.T) {
	p := pass.NewDescriptionAsToString()
	v := &ast.VariableDeclaration{
		Name:      "description",
		HasGetter: true,
		HasSetter: true,
		Getter:    []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "a point"}}},
	}
	in := fileWithTopLevel(v)
	out := p.Run(in)
	if _, ok := out.TopLevel[0].(*ast.VariableDeclaration); !ok {
		t.Fatalf("expected a settable description property left as a variable, got %T", out.TopLevel[0])
	}
}

func TestDescriptionAsToStringLeavesOtherPropertiesAlone(t *testing.T) {
	p := pass.NewDescriptionAsToString()
	v := &ast.VariableDeclaration{Name: "label", HasGetter: true, Getter: []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "x"}}}}
	in := fileWithTopLevel(v)
	out := p.Run(in)
	if _, ok := out.TopLevel[0].(*ast.VariableDeclaration); !ok {
		t.Fatalf("expected an unrelated property left alone, got %T", out.TopLevel[0])
	}
}
