package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestOptionalInitsRewritesStaticFailableInit(t *testing.T) {
	p := pass.NewOptionalInits()
	cls := &ast.ClassDeclaration{
		Name: "Direction",
		Members: []ast.Statement{
			&ast.InitializerDeclaration{
				IsStatic:   true,
				IsFailable: true,
				Parameters: []ast.Parameter{{Name: "raw", TypeAnnotation: "Int"}},
				Body: []ast.Statement{
					&ast.AssignmentStatement{
						Target:   &ast.DeclarationReferenceExpression{Name: "self"},
						Operator: "=",
						Value:    &ast.DeclarationReferenceExpression{Name: "north"},
					},
				},
			},
		},
	}
	in := fileWithTopLevel(cls)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.ClassDeclaration)
	fn, ok := got.Members[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected the initializer rewritten into a function, got %T", got.Members[0])
	}
	if fn.Name != "invoke" || fn.ReturnType != "Direction?" || !fn.IsStatic {
		t.Fatalf("unexpected rewritten function: %+v", fn)
	}
	ret, ok := fn.Body[0].(*ast.ReturnStatement)
	if !ok || ret.Value.(*ast.DeclarationReferenceExpression).Name != "north" {
		t.Fatalf("expected self-assignment rewritten into a return, got %+v", fn.Body[0])
	}
}

func TestOptionalInitsLeavesNonFailableInitAlone(t *testing.T) {
	p := pass.NewOptionalInits()
	cls := &ast.ClassDeclaration{
		Name: "Point",
		Members: []ast.Statement{
			&ast.InitializerDeclaration{IsStatic: true, Parameters: []ast.Parameter{{Name: "x", TypeAnnotation: "Int"}}},
		},
	}
	in := fileWithTopLevel(cls)
	out := p.Run(in)
	got := out.TopLevel[0].(*ast.ClassDeclaration)
	if _, ok := got.Members[0].(*ast.InitializerDeclaration); !ok {
		t.Fatalf("expected non-failable initializer left alone, got %T", got.Members[0])
	}
}
