package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func TestAddOptionalsInDotChainsPropagatesThroughChain(t *testing.T) {
	p := pass.NewAddOptionalsInDotChains()
	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.DotExpression{
			Receiver: &ast.DotExpression{
				Receiver:   &ast.DeclarationReferenceExpression{Name: "a"},
				Member:     "b",
				IsOptional: true,
			},
			Member: "c",
		},
	})
	out := p.Run(in)
	outer := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.DotExpression)
	if !outer.IsOptional {
		t.Fatalf("expected outer dot marked optional once an inner link is optional")
	}
}

func TestAddOptionalsInDotChainsLeavesNonOptionalChainAlone(t *testing.T) {
	p := pass.NewAddOptionalsInDotChains()
	in := fileWithTopLevel(&ast.ExpressionStatement{
		Expr: &ast.DotExpression{
			Receiver: &ast.DotExpression{
				Receiver: &ast.DeclarationReferenceExpression{Name: "a"},
				Member:   "b",
			},
			Member: "c",
		},
	})
	out := p.Run(in)
	outer := out.TopLevel[0].(*ast.ExpressionStatement).Expr.(*ast.DotExpression)
	if outer.IsOptional {
		t.Fatalf("expected outer dot left non-optional")
	}
}
