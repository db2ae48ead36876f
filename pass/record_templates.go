package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// templateModifier is the recognizable naming convention the frontend
// marks a template-declaration helper with (spec §6 "the frontend surfaces
// template functions via a recognizable naming convention"): a function
// carrying this modifier is not emitted as a real declaration — its body
// is exactly a pattern expression statement followed by a `return
// "target string"`, and record-templates consumes the pair as one
// (pattern, target) template entry.
const templateModifier = "template"

// RecordTemplates scans template-declaration helpers and populates the
// shared template registry (spec §4.3 first round #3).
type RecordTemplates struct {
	*Base
	ctx *sharedctx.Context
}

func NewRecordTemplates(ctx *sharedctx.Context) *RecordTemplates {
	p := &RecordTemplates{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *RecordTemplates) Name() string { return "record-templates" }

func (p *RecordTemplates) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RecordTemplates) ProcessFunction(n *ast.FunctionDeclaration) *ast.FunctionDeclaration {
	if !hasModifier(n.Modifiers, templateModifier) {
		return n
	}
	if pattern, target, ok := extractTemplate(n); ok {
		p.ctx.AddTemplate(pattern, target)
	}
	// Template-declaration helpers are frontend-only scaffolding; they carry
	// no target-language meaning of their own once recorded.
	return nil
}

func extractTemplate(n *ast.FunctionDeclaration) (ast.Expression, string, bool) {
	if len(n.Body) != 2 {
		return nil, "", false
	}
	exprStmt, ok := n.Body[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, "", false
	}
	ret, ok := n.Body[1].(*ast.ReturnStatement)
	if !ok || ret.Value == nil {
		return nil, "", false
	}
	target, ok := ret.Value.(*ast.StringLiteral)
	if !ok {
		return nil, "", false
	}
	return exprStmt.Expr, target.Value, true
}

func hasModifier(modifiers []string, want string) bool {
	for _, m := range modifiers {
		if m == want {
			return true
		}
	}
	return false
}
