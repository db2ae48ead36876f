package pass

import "github.com/swiftkt/swiftkt/ast"

// RearrangeIfLets hoists `let`-declarations out of if-conditions into
// immediately-preceding variable declarations, deduplicated across an
// else-if chain, and replaces the original condition with `x != null`
// (spec §4.4 "Rearrange if-lets"). A shadowing form `let x = x` is elided
// entirely (spec: "no hoisted declaration"). Must run after the side-
// effect warning pass (spec §4.3 ordering note: "warnings need original
// ordering").
type RearrangeIfLets struct{ *Base }

func NewRearrangeIfLets() *RearrangeIfLets {
	p := &RearrangeIfLets{}
	p.Base = NewBase(p)
	return p
}

func (p *RearrangeIfLets) Name() string { return "rearrange-if-lets" }

func (p *RearrangeIfLets) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RearrangeIfLets) ReplaceStatements(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		ifStmt, ok := s.(*ast.IfStatement)
		if !ok {
			out = append(out, p.Self.ReplaceStatement(s)...)
			continue
		}
		hoisted := p.hoistChain(ifStmt)
		out = append(out, hoisted...)
		out = append(out, ifStmt)
	}
	return out
}

// hoistChain rewrites an if/else-if/else chain in place and returns the
// variable declarations that must precede it.
func (p *RearrangeIfLets) hoistChain(stmt *ast.IfStatement) []ast.Statement {
	seen := make(map[string]bool)
	var hoisted []ast.Statement

	for cur := stmt; cur != nil; cur = cur.Else {
		newConds := make([]ast.IfCondition, 0, len(cur.Conditions))
		for _, c := range cur.Conditions {
			if c.Declaration == nil {
				newConds = append(newConds, ast.IfCondition{Expr: p.Self.ReplaceExpr(c.Expr)})
				continue
			}
			decl := c.Declaration
			if ref, ok := decl.Value.(*ast.DeclarationReferenceExpression); ok && ref.Name == decl.Name {
				newConds = append(newConds, ast.IfCondition{Expr: notNil(decl.Name)})
				continue
			}
			if !seen[decl.Name] {
				seen[decl.Name] = true
				hoisted = append(hoisted, &ast.VariableDeclaration{
					BaseNode:       decl.BaseNode,
					Name:           decl.Name,
					TypeAnnotation: decl.TypeAnnotation,
					Value:          p.Self.ReplaceExpr(decl.Value),
				})
			}
			newConds = append(newConds, ast.IfCondition{Expr: notNil(decl.Name)})
		}
		cur.Conditions = newConds
		cur.Then = p.Self.ReplaceStatements(cur.Then)
	}
	return hoisted
}

func notNil(name string) ast.Expression {
	return &ast.BinaryOpExpression{
		Left:     &ast.DeclarationReferenceExpression{Name: name},
		Operator: "!=",
		Right:    &ast.NilLiteral{},
	}
}
