package pass

import "github.com/swiftkt/swiftkt/ast"

// EquatableOperators rewrites a two-parameter `==` function into a method
// `equals(other: Any?): Bool` that binds names for `this` and `other`,
// type-checks `other is T` (returning false on failure), then runs the
// original body (spec §4.4 "Equatable operators").
type EquatableOperators struct{ *Base }

func NewEquatableOperators() *EquatableOperators {
	p := &EquatableOperators{}
	p.Base = NewBase(p)
	return p
}

func (p *EquatableOperators) Name() string { return "equatable-operators" }

func (p *EquatableOperators) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *EquatableOperators) ProcessFunction(n *ast.FunctionDeclaration) *ast.FunctionDeclaration {
	if n.Name != "==" || len(n.Parameters) != 2 {
		return n
	}
	lhs, rhs := n.Parameters[0], n.Parameters[1]
	otherType := rhs.TypeAnnotation
	if otherType == "" {
		otherType = lhs.TypeAnnotation
	}

	prelude := []ast.Statement{
		&ast.VariableDeclaration{
			Name:       lhs.Name,
			IsConstant: true,
			Value:      &ast.DeclarationReferenceExpression{Name: "this"},
		},
		&ast.IfStatement{
			Conditions: []ast.IfCondition{{Expr: &ast.PrefixUnaryExpression{
				Operator: "!",
				Operand:  &ast.BinaryOpExpression{Left: &ast.DeclarationReferenceExpression{Name: "other"}, Operator: "is", Right: &ast.TypeExpression{Name: otherType}},
			}}},
			Then: []ast.Statement{&ast.ReturnStatement{Value: &ast.BoolLiteral{Value: false}}},
		},
		&ast.VariableDeclaration{
			Name:       rhs.Name,
			IsConstant: true,
			Value:      &ast.DeclarationReferenceExpression{Name: "other"},
		},
	}

	n.Name = "equals"
	n.Parameters = []ast.Parameter{{Name: "other", TypeAnnotation: "Any?"}}
	n.ReturnType = "Bool"
	n.Body = append(prelude, p.Self.ReplaceStatements(n.Body)...)
	return n
}
