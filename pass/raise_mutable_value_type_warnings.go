package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
)

// mutatingModifier marks a source method that reassigns `self`, valid only
// on value types; Kotlin's `class` (what a struct compiles to) has
// reference semantics, so such a reassignment silently changes meaning.
const mutatingModifier = "mutating"

// RaiseMutableValueTypeWarnings warns on a struct whose body contains a
// mutating self-reassignment: the target class will share the
// reassignment across every alias instead of copying (spec §4.3 schedule
// tail, supplementing §4.4's explicit pass contracts).
type RaiseMutableValueTypeWarnings struct {
	*Base
	sink *diag.Sink
}

func NewRaiseMutableValueTypeWarnings(sink *diag.Sink) *RaiseMutableValueTypeWarnings {
	p := &RaiseMutableValueTypeWarnings{sink: sink}
	p.Base = NewBase(p)
	return p
}

func (p *RaiseMutableValueTypeWarnings) Name() string { return "raise-mutable-value-type-warnings" }

func (p *RaiseMutableValueTypeWarnings) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RaiseMutableValueTypeWarnings) ReplaceStruct(n *ast.StructDeclaration) []ast.Statement {
	for _, m := range n.Members {
		fn, ok := m.(*ast.FunctionDeclaration)
		if !ok || !hasModifier(fn.Modifiers, mutatingModifier) {
			continue
		}
		if reassignsSelf(fn.Body) {
			p.sink.Warningf(p.Name(), n.Pos(), "struct %q has a mutating method that reassigns self; the target class shares state across aliases instead of copying", n.Name)
			break
		}
	}
	return p.Base.ReplaceStruct(n)
}

func reassignsSelf(stmts []ast.Statement) bool {
	for _, s := range stmts {
		asn, ok := s.(*ast.AssignmentStatement)
		if !ok {
			continue
		}
		if ref, ok := asn.Target.(*ast.DeclarationReferenceExpression); ok && ref.Name == "self" {
			return true
		}
	}
	return false
}
