package pass

import "github.com/swiftkt/swiftkt/ast"

// RemoveExtraReturnsInInits drops a trailing bare `return` from an
// initializer's body (spec §4.4 "Remove extra returns in inits"): a
// failable initializer's escape-early pattern ends with a redundant bare
// return once every other exit path has already produced a value.
type RemoveExtraReturnsInInits struct{ *Base }

func NewRemoveExtraReturnsInInits() *RemoveExtraReturnsInInits {
	p := &RemoveExtraReturnsInInits{}
	p.Base = NewBase(p)
	return p
}

func (p *RemoveExtraReturnsInInits) Name() string { return "remove-extra-returns-in-inits" }

func (p *RemoveExtraReturnsInInits) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RemoveExtraReturnsInInits) ReplaceInitializer(n *ast.InitializerDeclaration) []ast.Statement {
	body := p.Self.ReplaceStatements(n.Body)
	if len(body) > 0 {
		if ret, ok := body[len(body)-1].(*ast.ReturnStatement); ok && ret.Value == nil {
			body = body[:len(body)-1]
		}
	}
	n.Body = body
	return []ast.Statement{n}
}
