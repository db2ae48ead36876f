package pass

import "github.com/swiftkt/swiftkt/ast"

// AnonymousParameters renames the shorthand closure parameter `$0` to `it`
// and drops the parameter list of a closure whose only parameter is `$0`,
// since Kotlin's implicit `it` needs no declared parameter (spec §4.4
// "Anonymous parameters").
type AnonymousParameters struct{ *Base }

func NewAnonymousParameters() *AnonymousParameters {
	p := &AnonymousParameters{}
	p.Base = NewBase(p)
	return p
}

func (p *AnonymousParameters) Name() string { return "anonymous-parameters" }

func (p *AnonymousParameters) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *AnonymousParameters) ReplaceExpr(e ast.Expression) ast.Expression {
	if ref, ok := e.(*ast.DeclarationReferenceExpression); ok && ref.Name == "$0" {
		cp := *ref
		cp.Name = "it"
		return &cp
	}
	if closure, ok := e.(*ast.ClosureExpression); ok {
		cp := *closure
		if len(cp.Parameters) == 1 && cp.Parameters[0].Name == "$0" {
			cp.Parameters = nil
		}
		cp.Body = p.Self.ReplaceStatements(closure.Body)
		return &cp
	}
	return p.Base.ReplaceExpr(e)
}
