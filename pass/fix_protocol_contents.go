package pass

import "github.com/swiftkt/swiftkt/ast"

// FixProtocolContents clears function and variable bodies inside a
// protocol, keeping only their signatures (spec §4.4 "Fix protocol
// contents").
type FixProtocolContents struct{ *Base }

func NewFixProtocolContents() *FixProtocolContents {
	p := &FixProtocolContents{}
	p.Base = NewBase(p)
	return p
}

func (p *FixProtocolContents) Name() string { return "fix-protocol-contents" }

func (p *FixProtocolContents) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *FixProtocolContents) ReplaceProtocol(n *ast.ProtocolDeclaration) []ast.Statement {
	members := make([]ast.Statement, len(n.Members))
	for i, m := range n.Members {
		switch v := m.(type) {
		case *ast.FunctionDeclaration:
			cp := *v
			cp.Body = nil
			members[i] = &cp
		case *ast.VariableDeclaration:
			cp := *v
			cp.Value, cp.Getter, cp.Setter = nil, nil, nil
			members[i] = &cp
		default:
			members[i] = m
		}
	}
	n.Members = members
	return []ast.Statement{n}
}
