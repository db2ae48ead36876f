package pass

import "github.com/swiftkt/swiftkt/ast"

// RemoveExtensions replaces an extension with the flat list of its
// members, each function stamped with ExtendsType set to the extension's
// target type (spec §4.4 "Remove extensions").
type RemoveExtensions struct{ *Base }

func NewRemoveExtensions() *RemoveExtensions {
	p := &RemoveExtensions{}
	p.Base = NewBase(p)
	return p
}

func (p *RemoveExtensions) Name() string { return "remove-extensions" }

func (p *RemoveExtensions) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RemoveExtensions) ReplaceExtension(n *ast.ExtensionStatement) []ast.Statement {
	members := p.Self.ReplaceStatements(n.Members)
	out := make([]ast.Statement, 0, len(members))
	for _, m := range members {
		if f, ok := m.(*ast.FunctionDeclaration); ok {
			cp := *f
			cp.ExtendsType = n.TypeName
			out = append(out, &cp)
			continue
		}
		out = append(out, m)
	}
	return out
}
