package pass

import "github.com/swiftkt/swiftkt/ast"

// RefactorOptionalsInSubscripts turns a subscript on an optional receiver
// into the call `x?.get(index)`, preserving the indexed type (spec §4.4
// "Refactor optionals in subscripts").
type RefactorOptionalsInSubscripts struct{ *Base }

func NewRefactorOptionalsInSubscripts() *RefactorOptionalsInSubscripts {
	p := &RefactorOptionalsInSubscripts{}
	p.Base = NewBase(p)
	return p
}

func (p *RefactorOptionalsInSubscripts) Name() string { return "refactor-optionals-in-subscripts" }

func (p *RefactorOptionalsInSubscripts) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RefactorOptionalsInSubscripts) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	sub, ok := e.(*ast.SubscriptExpression)
	if !ok || !isOptionalReceiver(sub.Receiver) {
		return e
	}
	return &ast.CallExpression{
		TypedBase: sub.TypedBase,
		Callee:    &ast.DotExpression{Receiver: sub.Receiver, Member: "get", IsOptional: true},
		Arguments: []ast.CallArgument{{Value: sub.Index}},
	}
}

func isOptionalReceiver(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.OptionalExpression:
		return true
	case *ast.DotExpression:
		return v.IsOptional
	default:
		return false
	}
}
