package pass

import "github.com/swiftkt/swiftkt/ast"

// RemoveImplicitDeclarations drops enum/typealias/variable/function
// declarations whose IsImplicit flag is set (spec §4.3 first round #1,
// §4.4 "Remove implicit declarations").
type RemoveImplicitDeclarations struct{ *Base }

// NewRemoveImplicitDeclarations returns a ready-to-run pass.
func NewRemoveImplicitDeclarations() *RemoveImplicitDeclarations {
	p := &RemoveImplicitDeclarations{}
	p.Base = NewBase(p)
	return p
}

func (p *RemoveImplicitDeclarations) Name() string { return "remove-implicit-declarations" }

func (p *RemoveImplicitDeclarations) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RemoveImplicitDeclarations) ReplaceTypealias(n *ast.TypealiasStatement) []ast.Statement {
	if n.IsImplicit {
		return nil
	}
	return []ast.Statement{n}
}

func (p *RemoveImplicitDeclarations) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	if n.IsImplicit {
		return nil
	}
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}

func (p *RemoveImplicitDeclarations) ProcessVariable(n *ast.VariableDeclaration) *ast.VariableDeclaration {
	if n.IsImplicit {
		return nil
	}
	return n
}

func (p *RemoveImplicitDeclarations) ProcessFunction(n *ast.FunctionDeclaration) *ast.FunctionDeclaration {
	if n.IsImplicit {
		return nil
	}
	return n
}
