package pass

import "github.com/swiftkt/swiftkt/ast"

// RawValues synthesizes, for an enum where every element carries a raw
// value, a static `init(rawValue:)` factory (switch over the raw value,
// returning the matching case or nil) and a `rawValue` computed property
// (switch over `this`, returning the per-case raw value) — spec §4.4
// "Raw values".
type RawValues struct{ *Base }

func NewRawValues() *RawValues {
	p := &RawValues{}
	p.Base = NewBase(p)
	return p
}

func (p *RawValues) Name() string { return "raw-values" }

func (p *RawValues) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RawValues) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	n.Members = p.Self.ReplaceStatements(n.Members)
	if !n.HasRawValues() {
		return []ast.Statement{n}
	}

	rawType := "Int"
	if lit, ok := n.Elements[0].RawValue.(*ast.StringLiteral); ok {
		_ = lit
		rawType = "String"
	}

	factoryCases := make([]*ast.SwitchCase, 0, len(n.Elements)+1)
	rawValueCases := make([]*ast.SwitchCase, 0, len(n.Elements))
	for _, el := range n.Elements {
		elementRef := &ast.DotExpression{Receiver: &ast.TypeExpression{Name: n.Name}, Member: el.Name}
		factoryCases = append(factoryCases, &ast.SwitchCase{
			Expressions: []ast.Expression{el.RawValue},
			Statements:  []ast.Statement{&ast.ReturnStatement{Value: elementRef}},
		})
		rawValueCases = append(rawValueCases, &ast.SwitchCase{
			Expressions: []ast.Expression{elementRef},
			Statements:  []ast.Statement{&ast.ReturnStatement{Value: el.RawValue}},
		})
	}
	factoryCases = append(factoryCases, &ast.SwitchCase{
		IsDefault:  true,
		Statements: []ast.Statement{&ast.ReturnStatement{Value: &ast.NilLiteral{}}},
	})

	factory := &ast.FunctionDeclaration{
		Name:       "init",
		IsStatic:   true,
		Parameters: []ast.Parameter{{Name: "rawValue", TypeAnnotation: rawType}},
		ReturnType: n.Name + "?",
		Body: []ast.Statement{&ast.SwitchStatement{
			Subject: &ast.DeclarationReferenceExpression{Name: "rawValue"},
			Cases:   factoryCases,
		}},
	}

	rawValueProperty := &ast.VariableDeclaration{
		Name:           "rawValue",
		TypeAnnotation: rawType,
		IsConstant:     true,
		HasGetter:      true,
		Getter: []ast.Statement{&ast.SwitchStatement{
			Subject: &ast.DeclarationReferenceExpression{Name: "this"},
			Cases:   rawValueCases,
		}},
	}

	n.Members = append(n.Members, factory, rawValueProperty)
	return []ast.Statement{n}
}
