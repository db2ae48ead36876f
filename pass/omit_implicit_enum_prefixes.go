package pass

import (
	"strings"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// OmitImplicitEnumPrefixes drops the `E.` prefix from a dot expression
// `E.member` found in a return statement whose enclosing function returns
// `E` (or `E?`), unless E names a sealed class (whose case constructors
// always need the prefix). Tracks the enclosing function's return type on
// a stack since returns may appear nested inside closures or conditionals
// (spec §4.4 "Omit implicit enum prefixes").
type OmitImplicitEnumPrefixes struct {
	*Base
	ctx         *sharedctx.ReadOnly
	returnTypes []string
}

func NewOmitImplicitEnumPrefixes(ctx *sharedctx.ReadOnly) *OmitImplicitEnumPrefixes {
	p := &OmitImplicitEnumPrefixes{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *OmitImplicitEnumPrefixes) Name() string { return "omit-implicit-enum-prefixes" }

func (p *OmitImplicitEnumPrefixes) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *OmitImplicitEnumPrefixes) ProcessFunction(n *ast.FunctionDeclaration) *ast.FunctionDeclaration {
	p.returnTypes = append(p.returnTypes, n.ReturnType)
	cp := p.Base.ProcessFunction(n)
	p.returnTypes = p.returnTypes[:len(p.returnTypes)-1]
	return cp
}

func (p *OmitImplicitEnumPrefixes) ReplaceReturn(n *ast.ReturnStatement) []ast.Statement {
	if n.Value == nil || len(p.returnTypes) == 0 {
		return p.Base.ReplaceReturn(n)
	}
	enumName := strings.TrimSuffix(p.returnTypes[len(p.returnTypes)-1], "?")
	if dot, ok := n.Value.(*ast.DotExpression); ok {
		if typeExpr, ok := dot.Receiver.(*ast.TypeExpression); ok &&
			typeExpr.Name == enumName && !p.ctx.IsSealedClass(enumName) {
			cp := *n
			cp.Value = &ast.DeclarationReferenceExpression{TypedBase: dot.TypedBase, Name: dot.Member}
			return []ast.Statement{&cp}
		}
	}
	return p.Base.ReplaceReturn(n)
}
