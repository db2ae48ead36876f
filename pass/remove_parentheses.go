package pass

import "github.com/swiftkt/swiftkt/ast"

// RemoveParentheses deletes a parentheses wrapper whose parent supplies
// its own grouping: a tuple expression, an interpolated-string segment, a
// subscript index, or an if-expression condition/branch (spec §4.4
// "Remove parentheses").
type RemoveParentheses struct{ *Base }

func NewRemoveParentheses() *RemoveParentheses {
	p := &RemoveParentheses{}
	p.Base = NewBase(p)
	return p
}

func (p *RemoveParentheses) Name() string { return "remove-parentheses" }

func (p *RemoveParentheses) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RemoveParentheses) ReplaceParentheses(n *ast.ParenthesesExpression) ast.Expression {
	inner := p.Self.ReplaceExpr(n.Inner)
	switch p.Parent().(type) {
	case *ast.TupleExpression, *ast.InterpolatedStringExpression,
		*ast.SubscriptExpression, *ast.IfExpression:
		return inner
	}
	return &ast.ParenthesesExpression{TypedBase: n.TypedBase, Inner: inner}
}
