package pass

import "github.com/swiftkt/swiftkt/ast"

// StaticMembers partitions a class/struct/enum's members: static
// functions (excluding initializers, which stay instance-level even when
// IsStatic marks a factory init) and static variables move into a single
// companion-object node prepended to the remaining members (spec §4.4
// "Static members").
type StaticMembers struct{ *Base }

func NewStaticMembers() *StaticMembers {
	p := &StaticMembers{}
	p.Base = NewBase(p)
	return p
}

func (p *StaticMembers) Name() string { return "static-members" }

func (p *StaticMembers) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *StaticMembers) ReplaceClass(n *ast.ClassDeclaration) []ast.Statement {
	n.Members = partitionStatics(p.Self.ReplaceStatements(n.Members))
	return []ast.Statement{n}
}

func (p *StaticMembers) ReplaceStruct(n *ast.StructDeclaration) []ast.Statement {
	n.Members = partitionStatics(p.Self.ReplaceStatements(n.Members))
	return []ast.Statement{n}
}

func (p *StaticMembers) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	n.Members = partitionStatics(p.Self.ReplaceStatements(n.Members))
	return []ast.Statement{n}
}

func partitionStatics(members []ast.Statement) []ast.Statement {
	var statics, rest []ast.Statement
	for _, m := range members {
		switch v := m.(type) {
		case *ast.FunctionDeclaration:
			if v.IsStatic {
				statics = append(statics, v)
				continue
			}
		case *ast.VariableDeclaration:
			if v.IsStatic {
				statics = append(statics, v)
				continue
			}
		}
		rest = append(rest, m)
	}
	if len(statics) == 0 {
		return rest
	}
	companion := &ast.CompanionObjectStatement{Members: statics}
	return append([]ast.Statement{companion}, rest...)
}
