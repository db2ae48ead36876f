package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
	"github.com/swiftkt/swiftkt/sharedctx"
)

func TestCapitalizeEnumsCamelCasesSealedClassMember(t *testing.T) {
	ctx := sharedctx.New()
	ctx.MarkSealedClass("Direction")
	p := pass.NewCapitalizeEnums(ctx.ReadOnly())

	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.DotExpression{
			Receiver: &ast.TypeExpression{Name: "Direction"},
			Member:   "North",
		},
	})
	out := p.Run(in)
	dot := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.DotExpression)
	if dot.Member != "north" {
		t.Fatalf("got %q, want north", dot.Member)
	}
}

func TestCapitalizeEnumsUpperSnakeCasesEnumClassMember(t *testing.T) {
	ctx := sharedctx.New()
	ctx.MarkEnumClass("Suit")
	p := pass.NewCapitalizeEnums(ctx.ReadOnly())

	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.DotExpression{
			Receiver: &ast.TypeExpression{Name: "Suit"},
			Member:   "clubs",
		},
	})
	out := p.Run(in)
	dot := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.DotExpression)
	if dot.Member != "CLUBS" {
		t.Fatalf("got %q, want CLUBS", dot.Member)
	}
}

func TestCapitalizeEnumsRenamesSealedClassElements(t *testing.T) {
	ctx := sharedctx.New()
	ctx.MarkSealedClass("Direction")
	p := pass.NewCapitalizeEnums(ctx.ReadOnly())

	enum := &ast.EnumDeclaration{
		Name: "Direction",
		Elements: []*ast.EnumElement{
			{Name: "North"},
			{Name: "South"},
		},
	}
	in := fileWithTopLevel(enum)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.EnumDeclaration)
	if got.Elements[0].Name != "north" || got.Elements[1].Name != "south" {
		t.Fatalf("elements not camel-cased: %q %q", got.Elements[0].Name, got.Elements[1].Name)
	}
}

func TestCapitalizeEnumsLeavesUnrecordedTypeAlone(t *testing.T) {
	ctx := sharedctx.New()
	p := pass.NewCapitalizeEnums(ctx.ReadOnly())

	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.DotExpression{
			Receiver: &ast.TypeExpression{Name: "Unrelated"},
			Member:   "Case",
		},
	})
	out := p.Run(in)
	dot := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.DotExpression)
	if dot.Member != "Case" {
		t.Fatalf("member should be untouched, got %q", dot.Member)
	}
}
