package pass

import "github.com/swiftkt/swiftkt/ast"

// ReturnsInLambdas converts a `return E` statement found anywhere inside a
// closure body into the bare expression-statement `E`, since a Kotlin
// lambda's last expression is its value (spec §4.4 "Returns in lambdas").
// The conversion applies only while descending into the closure and is
// restored on exit, so a `return` outside every closure is unaffected.
// Statement lists nested inside the closure (if/loop bodies, and the bodies
// of functions declared within it) are converted as well.
type ReturnsInLambdas struct {
	*Base
	depth int
}

func NewReturnsInLambdas() *ReturnsInLambdas {
	p := &ReturnsInLambdas{}
	p.Base = NewBase(p)
	return p
}

func (p *ReturnsInLambdas) Name() string { return "returns-in-lambdas" }

func (p *ReturnsInLambdas) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *ReturnsInLambdas) ReplaceExpr(e ast.Expression) ast.Expression {
	closure, ok := e.(*ast.ClosureExpression)
	if !ok {
		return p.Base.ReplaceExpr(e)
	}
	p.depth++
	cp := *closure
	cp.Body = p.Self.ReplaceStatements(closure.Body)
	p.depth--
	return &cp
}

func (p *ReturnsInLambdas) ReplaceStatements(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		if p.depth > 0 {
			if ret, ok := s.(*ast.ReturnStatement); ok && ret.Value != nil {
				out = append(out, &ast.ExpressionStatement{Expr: p.Self.ReplaceExpr(ret.Value)})
				continue
			}
		}
		out = append(out, p.Self.ReplaceStatement(s)...)
	}
	return out
}
