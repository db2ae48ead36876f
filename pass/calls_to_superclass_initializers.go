package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
)

// CallsToSuperclassInitializers hoists a statement-position `super.init(...)`
// call out of an initializer's body into its dedicated SuperCall field. If
// more than one such call is found, a warning is emitted and the
// initializer is left unchanged (spec §4.4 "Calls to superclass
// initializers").
type CallsToSuperclassInitializers struct {
	*Base
	sink *diag.Sink
}

func NewCallsToSuperclassInitializers(sink *diag.Sink) *CallsToSuperclassInitializers {
	p := &CallsToSuperclassInitializers{sink: sink}
	p.Base = NewBase(p)
	return p
}

func (p *CallsToSuperclassInitializers) Name() string { return "calls-to-superclass-initializers" }

func (p *CallsToSuperclassInitializers) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *CallsToSuperclassInitializers) ReplaceInitializer(n *ast.InitializerDeclaration) []ast.Statement {
	var superCalls []*ast.CallExpression
	body := make([]ast.Statement, 0, len(n.Body))
	for _, s := range n.Body {
		if call, ok := superInitCall(s); ok {
			superCalls = append(superCalls, call)
			continue
		}
		body = append(body, s)
	}
	if len(superCalls) > 1 {
		p.sink.Warningf(p.Name(), n.Pos(), "initializer contains %d calls to super.init; expected at most one", len(superCalls))
		return []ast.Statement{n}
	}
	cp := *n
	if len(superCalls) == 1 {
		cp.SuperCall = superCalls[0]
	}
	cp.Body = p.Self.ReplaceStatements(body)
	return []ast.Statement{&cp}
}

func superInitCall(s ast.Statement) (*ast.CallExpression, bool) {
	exprStmt, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}
	call, ok := exprStmt.Expr.(*ast.CallExpression)
	if !ok {
		return nil, false
	}
	dot, ok := call.Callee.(*ast.DotExpression)
	if !ok || dot.Member != "init" {
		return nil, false
	}
	ref, ok := dot.Receiver.(*ast.DeclarationReferenceExpression)
	if !ok || ref.Name != "super" {
		return nil, false
	}
	return call, true
}
