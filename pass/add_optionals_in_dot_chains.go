package pass

import "github.com/swiftkt/swiftkt/ast"

// AddOptionalsInDotChains ensures that once any receiver in a dot chain is
// optional, every link from that point on down the chain is marked
// optional too, so the chain short-circuits on a nil anywhere along it
// (spec §4.4 "Add optionals in dot chains").
type AddOptionalsInDotChains struct{ *Base }

func NewAddOptionalsInDotChains() *AddOptionalsInDotChains {
	p := &AddOptionalsInDotChains{}
	p.Base = NewBase(p)
	return p
}

func (p *AddOptionalsInDotChains) Name() string { return "add-optionals-in-dot-chains" }

func (p *AddOptionalsInDotChains) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *AddOptionalsInDotChains) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	dot, ok := e.(*ast.DotExpression)
	if !ok {
		return e
	}
	cp := *dot
	if chainHasOptional(dot.Receiver) {
		cp.IsOptional = true
	}
	return &cp
}

// chainHasOptional reports whether any receiver in e's dot/optional chain
// is itself optional.
func chainHasOptional(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.OptionalExpression:
		return true
	case *ast.DotExpression:
		return v.IsOptional || chainHasOptional(v.Receiver)
	default:
		return false
	}
}
