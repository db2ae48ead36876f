package pass

import "github.com/swiftkt/swiftkt/ast"

// DescriptionAsToString rewrites a `description` computed property (the
// source's CustomStringConvertible hook) into an overriding `toString()`
// method, the target-language equivalent convention.
type DescriptionAsToString struct{ *Base }

func NewDescriptionAsToString() *DescriptionAsToString {
	p := &DescriptionAsToString{}
	p.Base = NewBase(p)
	return p
}

func (p *DescriptionAsToString) Name() string { return "description-as-toString" }

func (p *DescriptionAsToString) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

// ReplaceStatements post-processes the default traversal's output, turning
// a lone `description` getter property into a `toString` method (spec
// §4.4's schedule entry; needs to change node kind, which Process<Kind>
// hooks can't do since they're constrained to one node of the same kind).
func (p *DescriptionAsToString) ReplaceStatements(stmts []ast.Statement) []ast.Statement {
	out := p.Base.ReplaceStatements(stmts)
	for i, s := range out {
		v, ok := s.(*ast.VariableDeclaration)
		if !ok || v.Name != "description" || !v.HasGetter || v.HasSetter {
			continue
		}
		out[i] = &ast.FunctionDeclaration{
			BaseNode:   v.BaseNode,
			Name:       "toString",
			Modifiers:  []string{"override"},
			ReturnType: "String",
			Body:       v.Getter,
		}
	}
	return out
}
