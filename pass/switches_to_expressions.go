package pass

import "github.com/swiftkt/swiftkt/ast"

// SwitchesToExpressions detects a switch whose every case converges on the
// same shape — all ending in `return E` with non-empty E, or all ending in
// an assignment to the same lhs name — and records that convergence on the
// SwitchStatement so the renderer can synthesize the enclosing expression
// form, dropping the now-redundant trailing statement from each case body.
// A variable declaration immediately followed by a convert-to-assignment
// switch targeting that same variable collapses into a single variable
// declaration initialized by the switch expression (spec §4.4
// "Switches-to-expressions"). Must run before remove-breaks-in-switches
// (spec §4.3 ordering note: dropping a break-only case first would make an
// exhaustive switch look non-exhaustive).
type SwitchesToExpressions struct{ *Base }

func NewSwitchesToExpressions() *SwitchesToExpressions {
	p := &SwitchesToExpressions{}
	p.Base = NewBase(p)
	return p
}

func (p *SwitchesToExpressions) Name() string { return "switches-to-expressions" }

func (p *SwitchesToExpressions) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *SwitchesToExpressions) ReplaceStatements(stmts []ast.Statement) []ast.Statement {
	stmts = p.Base.ReplaceStatements(stmts)
	out := make([]ast.Statement, 0, len(stmts))
	for i := 0; i < len(stmts); i++ {
		sw, ok := stmts[i].(*ast.SwitchStatement)
		if !ok {
			out = append(out, stmts[i])
			continue
		}
		sw = convert(sw)
		if sw.Converts == ast.ConvertsToAssignment && len(out) > 0 {
			if decl, ok := out[len(out)-1].(*ast.VariableDeclaration); ok && decl.Name == sw.AssignName && decl.Value == nil {
				cp := *decl
				cp.SwitchInit = sw
				out[len(out)-1] = &cp
				continue
			}
		}
		out = append(out, sw)
	}
	return out
}

func convert(sw *ast.SwitchStatement) *ast.SwitchStatement {
	if len(sw.Cases) == 0 {
		return sw
	}
	if kind, name, ok := allCasesConvergeOnReturn(sw.Cases); ok {
		cp := *sw
		cp.Converts = kind
		cp.AssignName = name
		cp.Cases = dropTrailing(sw.Cases)
		return &cp
	}
	return sw
}

// allCasesConvergeOnReturn reports whether every case's last statement is a
// `return E` (ConvertsToReturn) or an assignment to the same name
// (ConvertsToAssignment).
func allCasesConvergeOnReturn(cases []*ast.SwitchCase) (ast.ConversionKind, string, bool) {
	returns, assigns := true, true
	var assignName string
	for _, c := range cases {
		if len(c.Statements) == 0 {
			return ast.NoConversion, "", false
		}
		last := c.Statements[len(c.Statements)-1]
		if ret, ok := last.(*ast.ReturnStatement); !ok || ret.Value == nil {
			returns = false
		}
		if asn, ok := last.(*ast.AssignmentStatement); ok {
			if ref, ok := asn.Target.(*ast.DeclarationReferenceExpression); ok && asn.Operator == "=" {
				if assignName == "" {
					assignName = ref.Name
				} else if assignName != ref.Name {
					assigns = false
				}
				continue
			}
		}
		assigns = false
	}
	switch {
	case returns:
		return ast.ConvertsToReturn, "", true
	case assigns && assignName != "":
		return ast.ConvertsToAssignment, assignName, true
	default:
		return ast.NoConversion, "", false
	}
}

// dropTrailing replaces each case's trailing `return E` or `name = E` with
// the bare expression-statement `E`, so the case still yields a value once
// rendered inside a `when` expression.
func dropTrailing(cases []*ast.SwitchCase) []*ast.SwitchCase {
	out := make([]*ast.SwitchCase, len(cases))
	for i, c := range cases {
		cp := *c
		stmts := append([]ast.Statement(nil), c.Statements...)
		last := len(stmts) - 1
		switch s := stmts[last].(type) {
		case *ast.ReturnStatement:
			stmts[last] = &ast.ExpressionStatement{BaseNode: s.BaseNode, Expr: s.Value}
		case *ast.AssignmentStatement:
			stmts[last] = &ast.ExpressionStatement{BaseNode: s.BaseNode, Expr: s.Value}
		}
		cp.Statements = stmts
		out[i] = &cp
	}
	return out
}
