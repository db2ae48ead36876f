package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// RecordEnums classifies each enum as sealed-class-style (has a remaining
// inheritance entry or at least one case with associated values) or
// enum-class-style, and records its name in the shared context (spec §4.3
// first round #4). Must run after CleanInheritances (spec §4.3 ordering
// note: "Record-enums depends on Clean-inheritances having already run") so
// a raw-representable base type, which that pass strips, does not make an
// enum look sealed here.
type RecordEnums struct {
	*Base
	ctx *sharedctx.Context
}

func NewRecordEnums(ctx *sharedctx.Context) *RecordEnums {
	p := &RecordEnums{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *RecordEnums) Name() string { return "record-enums" }

func (p *RecordEnums) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RecordEnums) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	if n.HasAssociatedValues() || len(n.Inheritance) > 0 {
		p.ctx.MarkSealedClass(n.Name)
	} else {
		p.ctx.MarkEnumClass(n.Name)
	}
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}
