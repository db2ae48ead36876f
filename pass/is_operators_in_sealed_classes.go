package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/ident"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// IsOperatorsInSealedClasses rewrites `x is E.case` into a type check
// against the case's subclass name, recovering the PascalCase subclass
// name from the lowerCamel accessor name capitalize-enums already
// produced. Must run after capitalize-enums, which it reads the
// capitalized form from (spec §4.3 ordering note, §4.4 pass list).
type IsOperatorsInSealedClasses struct {
	*Base
	ctx *sharedctx.ReadOnly
}

func NewIsOperatorsInSealedClasses(ctx *sharedctx.ReadOnly) *IsOperatorsInSealedClasses {
	p := &IsOperatorsInSealedClasses{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *IsOperatorsInSealedClasses) Name() string { return "is-operators-in-sealed-classes" }

func (p *IsOperatorsInSealedClasses) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *IsOperatorsInSealedClasses) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	bin, ok := e.(*ast.BinaryOpExpression)
	if !ok || bin.Operator != "is" {
		return e
	}
	dot, ok := bin.Right.(*ast.DotExpression)
	if !ok {
		return e
	}
	typeExpr, ok := dot.Receiver.(*ast.TypeExpression)
	if !ok || !p.ctx.IsSealedClass(typeExpr.Name) {
		return e
	}
	cp := *bin
	cp.Right = &ast.TypeExpression{Name: typeExpr.Name + "." + ident.PascalCase(dot.Member)}
	return &cp
}
