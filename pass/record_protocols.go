package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// RecordProtocols records every protocol's name in the shared context
// (spec §4.3 first round #5), so ReadOnly.IsProtocol can tell a
// protocol-turned-interface name apart from a class. No pass in the
// default schedule consults it.
type RecordProtocols struct {
	*Base
	ctx *sharedctx.Context
}

func NewRecordProtocols(ctx *sharedctx.Context) *RecordProtocols {
	p := &RecordProtocols{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *RecordProtocols) Name() string { return "record-protocols" }

func (p *RecordProtocols) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RecordProtocols) ReplaceProtocol(n *ast.ProtocolDeclaration) []ast.Statement {
	p.ctx.MarkProtocol(n.Name)
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}
