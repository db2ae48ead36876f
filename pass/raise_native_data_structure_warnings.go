package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
)

// RaiseNativeDataStructureWarnings warns on every array or dictionary
// literal still present by the end of the schedule: the renderer always
// emits `mutableListOf`/`mutableMapOf`, whose mutable-reference semantics
// diverge from the source literal's value-type default (spec §4.3
// schedule tail, supplementing §4.4's explicit pass contracts).
type RaiseNativeDataStructureWarnings struct {
	*Base
	sink *diag.Sink
}

func NewRaiseNativeDataStructureWarnings(sink *diag.Sink) *RaiseNativeDataStructureWarnings {
	p := &RaiseNativeDataStructureWarnings{sink: sink}
	p.Base = NewBase(p)
	return p
}

func (p *RaiseNativeDataStructureWarnings) Name() string {
	return "raise-native-data-structure-warnings"
}

func (p *RaiseNativeDataStructureWarnings) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RaiseNativeDataStructureWarnings) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	switch v := e.(type) {
	case *ast.ArrayExpression:
		p.sink.Warningf(p.Name(), v.Pos(), "array literal becomes a mutableListOf; target collection has different mutability defaults")
	case *ast.DictionaryExpression:
		p.sink.Warningf(p.Name(), v.Pos(), "dictionary literal becomes a mutableMapOf; target collection has different mutability defaults")
	}
	return e
}
