package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// knownStandardLibrarySymbols lists common source-standard-library
// identifiers that need a template (spec §4.5) to reach the target
// language; anything else reaching render time renders as a dangling
// identifier. Only registered template patterns count as a mapping here;
// recorded function translations are not consulted.
var knownStandardLibrarySymbols = map[string]struct{}{
	"print": {}, "append": {}, "map": {}, "filter": {}, "reduce": {},
	"count": {}, "first": {}, "last": {}, "sorted": {}, "contains": {},
	"isEmpty": {}, "removeAll": {}, "joined": {}, "reversed": {}, "max": {}, "min": {},
}

// RaiseStandardLibraryWarnings warns on a reference to a known source-
// standard-library symbol that no registered template pattern references
// (spec §4.3 schedule tail, supplementing §4.4's explicit pass contracts).
type RaiseStandardLibraryWarnings struct {
	*Base
	ctx  *sharedctx.ReadOnly
	sink *diag.Sink
}

func NewRaiseStandardLibraryWarnings(ctx *sharedctx.ReadOnly, sink *diag.Sink) *RaiseStandardLibraryWarnings {
	p := &RaiseStandardLibraryWarnings{ctx: ctx, sink: sink}
	p.Base = NewBase(p)
	return p
}

func (p *RaiseStandardLibraryWarnings) Name() string { return "raise-standard-library-warnings" }

func (p *RaiseStandardLibraryWarnings) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RaiseStandardLibraryWarnings) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	ref, ok := e.(*ast.DeclarationReferenceExpression)
	if !ok {
		return e
	}
	if _, known := knownStandardLibrarySymbols[ref.Name]; !known {
		return e
	}
	if p.hasMapping(ref.Name) {
		return e
	}
	p.sink.Warningf(p.Name(), ref.Pos(), "unresolved standard-library symbol %q has no recorded target mapping", ref.Name)
	return e
}

func (p *RaiseStandardLibraryWarnings) hasMapping(name string) bool {
	for _, t := range p.ctx.Templates() {
		if referencesName(t.Pattern, name) {
			return true
		}
	}
	return false
}

func referencesName(e ast.Expression, name string) bool {
	switch v := e.(type) {
	case *ast.DeclarationReferenceExpression:
		return v.Name == name
	case *ast.DotExpression:
		return v.Member == name || referencesName(v.Receiver, name)
	case *ast.CallExpression:
		return referencesName(v.Callee, name)
	default:
		return false
	}
}
