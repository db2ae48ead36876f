package pass

import "github.com/swiftkt/swiftkt/ast"

// ReturnIfNil rewrites a single-condition, single-statement `if x == nil {
// return E }` into the expression-statement `x ?: return E` (spec §4.4
// "Return if nil").
type ReturnIfNil struct{ *Base }

func NewReturnIfNil() *ReturnIfNil {
	p := &ReturnIfNil{}
	p.Base = NewBase(p)
	return p
}

func (p *ReturnIfNil) Name() string { return "return-if-nil" }

func (p *ReturnIfNil) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *ReturnIfNil) ReplaceStatements(stmts []ast.Statement) []ast.Statement {
	stmts = p.Base.ReplaceStatements(stmts)
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		if rewritten, ok := asReturnIfNil(s); ok {
			out = append(out, rewritten)
			continue
		}
		out = append(out, s)
	}
	return out
}

func asReturnIfNil(s ast.Statement) (ast.Statement, bool) {
	ifStmt, ok := s.(*ast.IfStatement)
	if !ok || ifStmt.IsGuard || ifStmt.Else != nil || len(ifStmt.Conditions) != 1 || len(ifStmt.Then) != 1 {
		return nil, false
	}
	cond := ifStmt.Conditions[0]
	if cond.Declaration != nil {
		return nil, false
	}
	bin, ok := cond.Expr.(*ast.BinaryOpExpression)
	if !ok || bin.Operator != "==" {
		return nil, false
	}
	if _, ok := bin.Right.(*ast.NilLiteral); !ok {
		return nil, false
	}
	ret, ok := ifStmt.Then[0].(*ast.ReturnStatement)
	if !ok {
		return nil, false
	}
	return &ast.ExpressionStatement{
		BaseNode: ifStmt.BaseNode,
		Expr: &ast.BinaryOpExpression{
			Left:     bin.Left,
			Operator: "?:",
			Right:    &ast.ReturnExpression{Value: ret.Value},
		},
	}, true
}
