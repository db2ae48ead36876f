package pass

import "github.com/swiftkt/swiftkt/ast"

// OptionalInits rewrites a static failable initializer into a function
// named `invoke` returning `<Type>?`, keeping parameters, statements, and
// modifiers; inside it, `self = X` becomes `return X` (spec §4.4 "Optional
// inits").
type OptionalInits struct{ *Base }

func NewOptionalInits() *OptionalInits {
	p := &OptionalInits{}
	p.Base = NewBase(p)
	return p
}

func (p *OptionalInits) Name() string { return "optional-inits" }

func (p *OptionalInits) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *OptionalInits) ReplaceInitializer(n *ast.InitializerDeclaration) []ast.Statement {
	if !n.IsStatic || !n.IsFailable {
		return []ast.Statement{n}
	}
	typeName := enclosingTypeName(p.Parent())
	body := p.Self.ReplaceStatements(n.Body)
	return []ast.Statement{&ast.FunctionDeclaration{
		BaseNode:   n.BaseNode,
		Name:       "invoke",
		Parameters: n.Parameters,
		ReturnType: typeName + "?",
		Modifiers:  n.Modifiers,
		IsStatic:   true,
		Body:       selfAssignmentsToReturns(body),
	}}
}

func enclosingTypeName(parent ast.Node) string {
	switch t := parent.(type) {
	case *ast.ClassDeclaration:
		return t.Name
	case *ast.StructDeclaration:
		return t.Name
	case *ast.EnumDeclaration:
		return t.Name
	default:
		return ""
	}
}

func selfAssignmentsToReturns(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, len(stmts))
	for i, s := range stmts {
		if a, ok := s.(*ast.AssignmentStatement); ok && a.Operator == "=" && isSelfReference(a.Target) {
			out[i] = &ast.ReturnStatement{BaseNode: a.BaseNode, Value: a.Value}
			continue
		}
		out[i] = s
	}
	return out
}

func isSelfReference(e ast.Expression) bool {
	ref, ok := e.(*ast.DeclarationReferenceExpression)
	return ok && (ref.Name == "self" || ref.IsImplicitSelf)
}
