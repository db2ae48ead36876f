package pass

import "github.com/swiftkt/swiftkt/ast"

// SelfToThis renames `self` references to `this` and drops the explicit
// receiver on implicit-self member access (spec §4.4 "Self to this").
type SelfToThis struct{ *Base }

func NewSelfToThis() *SelfToThis {
	p := &SelfToThis{}
	p.Base = NewBase(p)
	return p
}

func (p *SelfToThis) Name() string { return "self-to-this" }

func (p *SelfToThis) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *SelfToThis) ReplaceExpr(e ast.Expression) ast.Expression {
	if ref, ok := e.(*ast.DeclarationReferenceExpression); ok && ref.Name == "self" {
		cp := *ref
		cp.Name = "this"
		return &cp
	}
	if dot, ok := e.(*ast.DotExpression); ok {
		if ref, ok := dot.Receiver.(*ast.DeclarationReferenceExpression); ok && ref.IsImplicitSelf {
			return &ast.DeclarationReferenceExpression{TypedBase: dot.TypedBase, Name: dot.Member}
		}
	}
	return p.Base.ReplaceExpr(e)
}
