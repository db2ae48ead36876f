package pass

import "github.com/swiftkt/swiftkt/ast"

// DoubleNegativesInGuards rewrites a guard with a single `!X`, `X != Y`, or
// `X == Y` condition into a plain if-statement over the negated condition,
// dropping the double negative that a literal `if !(guardCondition)`
// translation would otherwise produce (spec §4.4 "Double negatives in
// guards").
type DoubleNegativesInGuards struct{ *Base }

func NewDoubleNegativesInGuards() *DoubleNegativesInGuards {
	p := &DoubleNegativesInGuards{}
	p.Base = NewBase(p)
	return p
}

func (p *DoubleNegativesInGuards) Name() string { return "double-negatives-in-guards" }

func (p *DoubleNegativesInGuards) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *DoubleNegativesInGuards) ProcessIf(n *ast.IfStatement) *ast.IfStatement {
	if negated, ok := negate(n); ok {
		n = negated
	}
	return p.Base.ProcessIf(n)
}

func negate(n *ast.IfStatement) (*ast.IfStatement, bool) {
	if !n.IsGuard || len(n.Conditions) != 1 || n.Conditions[0].Declaration != nil {
		return nil, false
	}
	var flipped ast.Expression
	switch e := n.Conditions[0].Expr.(type) {
	case *ast.PrefixUnaryExpression:
		if e.Operator != "!" {
			return nil, false
		}
		flipped = e.Operand
	case *ast.BinaryOpExpression:
		switch e.Operator {
		case "!=":
			flipped = &ast.BinaryOpExpression{TypedBase: e.TypedBase, Left: e.Left, Operator: "==", Right: e.Right}
		case "==":
			flipped = &ast.BinaryOpExpression{TypedBase: e.TypedBase, Left: e.Left, Operator: "!=", Right: e.Right}
		default:
			return nil, false
		}
	default:
		return nil, false
	}
	cp := *n
	cp.IsGuard = false
	cp.Conditions = []ast.IfCondition{{Expr: flipped}}
	return &cp, true
}
