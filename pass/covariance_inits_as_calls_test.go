package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestCovarianceInitsAsCallsRewritesAsCall(t *testing.T) {
	p := pass.NewCovarianceInitsAsCalls()
	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.CallExpression{
			Callee: &ast.DotExpression{
				Receiver: &ast.DeclarationReferenceExpression{Name: "items"},
				Member:   "as",
			},
			Arguments: []ast.CallArgument{{Value: &ast.TypeExpression{Name: "String"}}},
		},
	})
	out := p.Run(in)
	bin, ok := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.BinaryOpExpression)
	if !ok || bin.Operator != "as?" {
		t.Fatalf("expected as? binary expression, got %#v", out.TopLevel[0])
	}
	ref, ok := bin.Left.(*ast.DeclarationReferenceExpression)
	if !ok || ref.Name != "items" {
		t.Fatalf("expected receiver preserved as left operand, got %#v", bin.Left)
	}
}

func TestCovarianceInitsAsCallsUnwrapsMatchingElementType(t *testing.T) {
	p := pass.NewCovarianceInitsAsCalls()
	arg := &ast.DeclarationReferenceExpression{
		TypedBase: ast.TypedBase{Type: "String"},
		Name:      "items",
	}
	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.CallExpression{
			Callee:    &ast.TypeExpression{Name: "ArrayClass<String>"},
			Arguments: []ast.CallArgument{{Value: arg}},
		},
	})
	out := p.Run(in)
	ref, ok := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.DeclarationReferenceExpression)
	if !ok || ref.Name != "items" {
		t.Fatalf("expected bare argument returned, got %#v", out.TopLevel[0])
	}
}

func TestCovarianceInitsAsCallsWrapsMismatchedElementType(t *testing.T) {
	p := pass.NewCovarianceInitsAsCalls()
	arg := &ast.DeclarationReferenceExpression{
		TypedBase: ast.TypedBase{Type: "Int"},
		Name:      "items",
	}
	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.CallExpression{
			Callee:    &ast.TypeExpression{Name: "ArrayClass<String>"},
			Arguments: []ast.CallArgument{{Value: arg}},
		},
	})
	out := p.Run(in)
	call, ok := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected a toMutableList call, got %#v", out.TopLevel[0])
	}
	dot, ok := call.Callee.(*ast.DotExpression)
	if !ok || dot.Member != "toMutableList<String>" {
		t.Fatalf("expected toMutableList<String> member, got %#v", call.Callee)
	}
}
