package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
	"github.com/swiftkt/swiftkt/template"
)

// ReplaceTemplates walks the tree and, at each expression, attempts to
// unify it against every registered template pattern in registration
// order, replacing the first match with a *ast.TemplateExpression (spec
// §4.5, §4.3 second round #1).
type ReplaceTemplates struct {
	*Base
	ctx *sharedctx.ReadOnly
}

func NewReplaceTemplates(ctx *sharedctx.ReadOnly) *ReplaceTemplates {
	p := &ReplaceTemplates{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *ReplaceTemplates) Name() string { return "replace-templates" }

func (p *ReplaceTemplates) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *ReplaceTemplates) ReplaceExpr(e ast.Expression) ast.Expression {
	// Descend first so templates can match against already-rewritten
	// children (e.g. a nested template inside a call argument).
	e = p.Base.ReplaceExpr(e)
	if _, isTemplate := e.(*ast.TemplateExpression); isTemplate {
		return e
	}
	if replaced, ok := template.Replace(e, p.ctx.Templates()); ok {
		return replaced
	}
	return e
}
