package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestRemoveExtensionsFlattensMembersAndStampsExtendsType(t *testing.T) {
	p := pass.NewRemoveExtensions()
	ext := &ast.ExtensionStatement{
		TypeName: "Point",
		Members: []ast.Statement{
			&ast.FunctionDeclaration{Name: "translated"},
		},
	}
	in := fileWithTopLevel(ext)
	out := p.Run(in)
	if len(out.TopLevel) != 1 {
		t.Fatalf("expected the extension flattened into 1 statement, got %d", len(out.TopLevel))
	}
	fn, ok := out.TopLevel[0].(*ast.FunctionDeclaration)
	if !ok || fn.ExtendsType != "Point" {
		t.Fatalf("expected the function stamped with ExtendsType Point, got %+v", out.TopLevel[0])
	}
}
