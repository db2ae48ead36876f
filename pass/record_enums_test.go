package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
	"github.com/swiftkt/swiftkt/sharedctx"
)

func TestRecordEnumsMarksEnumClassWithoutAssociatedValues(t *testing.T) {
	ctx := sharedctx.New()
	p := pass.NewRecordEnums(ctx)
	en := &ast.EnumDeclaration{
		Name: "Direction",
		Elements: []*ast.EnumElement{
			{Name: "north"},
			{Name: "south"},
		},
	}
	p.Run(fileWithTopLevel(en))
	ro := ctx.ReadOnly()
	if !ro.IsEnumClass("Direction") || ro.IsSealedClass("Direction") {
		t.Fatalf("expected Direction recorded as enum class only")
	}
}

func TestRecordEnumsMarksSealedClassWithAssociatedValues(t *testing.T) {
	ctx := sharedctx.New()
	p := pass.NewRecordEnums(ctx)
	en := &ast.EnumDeclaration{
		Name: "Shape",
		Elements: []*ast.EnumElement{
			{Name: "circle", AssociatedValues: []ast.Parameter{{Name: "radius", TypeAnnotation: "Double"}}},
		},
	}
	p.Run(fileWithTopLevel(en))
	ro := ctx.ReadOnly()
	if !ro.IsSealedClass("Shape") || ro.IsEnumClass("Shape") {
		t.Fatalf("expected Shape recorded as sealed class only")
	}
}
