package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestRawValuesSynthesizesFactoryAndProperty(t *testing.T) {
	p := pass.NewRawValues()
	en := &ast.EnumDeclaration{
		Name: "Direction",
		Elements: []*ast.EnumElement{
			{Name: "north", RawValue: &ast.IntLiteral{Value: 0}},
			{Name: "south", RawValue: &ast.IntLiteral{Value: 1}},
		},
	}
	in := fileWithTopLevel(en)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.EnumDeclaration)

	if len(got.Members) != 2 {
		t.Fatalf("expected a factory function and a rawValue property appended, got %d members", len(got.Members))
	}
	factory, ok := got.Members[0].(*ast.FunctionDeclaration)
	if !ok || factory.Name != "init" || !factory.IsStatic || factory.ReturnType != "Direction?" {
		t.Fatalf("expected a static optional-returning init factory, got %+v", got.Members[0])
	}
	prop, ok := got.Members[1].(*ast.VariableDeclaration)
	if !ok || prop.Name != "rawValue" || prop.TypeAnnotation != "Int" {
		t.Fatalf("expected an Int rawValue property, got %+v", got.Members[1])
	}
}

func TestRawValuesLeavesEnumWithoutRawValuesAlone(t *testing.T) {
	p := pass.NewRawValues()
	en := &ast.EnumDeclaration{
		Name: "Direction",
		Elements: []*ast.EnumElement{
			{Name: "north"},
			{Name: "south"},
		},
	}
	in := fileWithTopLevel(en)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.EnumDeclaration)
	if len(got.Members) != 0 {
		t.Fatalf("expected no synthesized members for a raw-value-free enum, got %d", len(got.Members))
	}
}
