package pass

import "github.com/swiftkt/swiftkt/ast"

// ShadowedIfLetAsToIs rewrites an if-condition `let x = x as? T` into the
// plain boolean condition `x is T` (spec §4.4, §8 scenario 2). Must run
// before warn-side-effects-in-if-lets (spec §4.3 ordering note: "the
// rewrite removes spurious warning triggers").
type ShadowedIfLetAsToIs struct{ *Base }

func NewShadowedIfLetAsToIs() *ShadowedIfLetAsToIs {
	p := &ShadowedIfLetAsToIs{}
	p.Base = NewBase(p)
	return p
}

func (p *ShadowedIfLetAsToIs) Name() string { return "shadowed-if-let-as-to-is" }

func (p *ShadowedIfLetAsToIs) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *ShadowedIfLetAsToIs) ReplaceIfConditions(conds []ast.IfCondition) []ast.IfCondition {
	out := make([]ast.IfCondition, len(conds))
	for i, c := range conds {
		out[i] = p.rewrite(c)
	}
	return out
}

func (p *ShadowedIfLetAsToIs) rewrite(c ast.IfCondition) ast.IfCondition {
	if c.Declaration == nil {
		return ast.IfCondition{Expr: p.Self.ReplaceExpr(c.Expr)}
	}
	decl := c.Declaration
	cast, ok := decl.Value.(*ast.BinaryOpExpression)
	if !ok || cast.Operator != "as?" {
		return ast.IfCondition{Declaration: decl}
	}
	ref, ok := cast.Left.(*ast.DeclarationReferenceExpression)
	if !ok || ref.Name != decl.Name {
		return ast.IfCondition{Declaration: decl}
	}
	typeExpr, ok := cast.Right.(*ast.TypeExpression)
	if !ok {
		return ast.IfCondition{Declaration: decl}
	}
	return ast.IfCondition{Expr: &ast.BinaryOpExpression{
		Left:     &ast.DeclarationReferenceExpression{Name: decl.Name},
		Operator: "is",
		Right:    typeExpr,
	}}
}
