package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/ident"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// CapitalizeEnums renames the right side of a dot expression whose left
// side names a recorded enum: camel-case for a sealed-class enum,
// upper-snake-case for an enum-class enum. Sealed-class enum element
// declarations get the same renaming. Must run before
// is-operators-in-sealed-classes, which reads the capitalized form (spec
// §4.3 ordering note, §4.4 "Capitalize enums").
type CapitalizeEnums struct {
	*Base
	ctx *sharedctx.ReadOnly
}

func NewCapitalizeEnums(ctx *sharedctx.ReadOnly) *CapitalizeEnums {
	p := &CapitalizeEnums{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *CapitalizeEnums) Name() string { return "capitalize-enums" }

func (p *CapitalizeEnums) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *CapitalizeEnums) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	dot, ok := e.(*ast.DotExpression)
	if !ok {
		return e
	}
	typeExpr, ok := dot.Receiver.(*ast.TypeExpression)
	if !ok {
		return e
	}
	cp := *dot
	if p.ctx.IsSealedClass(typeExpr.Name) {
		cp.Member = ident.CamelCase(dot.Member)
		return &cp
	}
	if p.ctx.IsEnumClass(typeExpr.Name) {
		cp.Member = ident.UpperSnakeCase(dot.Member)
		return &cp
	}
	return e
}

func (p *CapitalizeEnums) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	if !p.ctx.IsSealedClass(n.Name) {
		return p.Base.ReplaceEnum(n)
	}
	cp := *n
	cp.Elements = make([]*ast.EnumElement, len(n.Elements))
	for i, el := range n.Elements {
		ecp := *el
		ecp.Name = ident.CamelCase(el.Name)
		cp.Elements[i] = &ecp
	}
	return []ast.Statement{&cp}
}
