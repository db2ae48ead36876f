package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
)

// WarnSideEffectsInIfLets emits a warning when an if-let's bound value is
// a call expression: rearrange-if-lets (the next pass in the schedule)
// hoists the binding out of the condition, which can reorder or duplicate
// a side effect relative to the original single evaluation (spec §4.4,
// §7 "potential side effects in hoisted if-lets"). Must run after
// shadowed-if-let-as-to-is (spec §4.3 ordering note: its rewrite removes
// spurious triggers here) and before rearrange-if-lets (whose hoist is
// what the warning is about).
type WarnSideEffectsInIfLets struct {
	*Base
	sink *diag.Sink
}

func NewWarnSideEffectsInIfLets(sink *diag.Sink) *WarnSideEffectsInIfLets {
	p := &WarnSideEffectsInIfLets{sink: sink}
	p.Base = NewBase(p)
	return p
}

func (p *WarnSideEffectsInIfLets) Name() string { return "warn-side-effects-in-if-lets" }

func (p *WarnSideEffectsInIfLets) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *WarnSideEffectsInIfLets) ReplaceIfConditions(conds []ast.IfCondition) []ast.IfCondition {
	for _, c := range conds {
		if c.Declaration == nil || c.Declaration.Value == nil {
			continue
		}
		if _, isCall := c.Declaration.Value.(*ast.CallExpression); isCall {
			p.sink.Warningf(p.Name(), c.Declaration.Pos(), "if-let binding %q evaluates a call; hoisting may change when its side effects run", c.Declaration.Name)
		}
	}
	return p.Base.ReplaceIfConditions(conds)
}
