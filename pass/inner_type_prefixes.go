package pass

import "github.com/swiftkt/swiftkt/ast"

// InnerTypePrefixes maintains a stack of enclosing type names and strips a
// leading "Enclosing." qualifier from type references and variable type
// annotations once the reference lies inside that same enclosing type
// (spec §4.4 "Inner type prefixes").
type InnerTypePrefixes struct {
	*Base
	stack []string
}

func NewInnerTypePrefixes() *InnerTypePrefixes {
	p := &InnerTypePrefixes{}
	p.Base = NewBase(p)
	return p
}

func (p *InnerTypePrefixes) Name() string { return "inner-type-prefixes" }

func (p *InnerTypePrefixes) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *InnerTypePrefixes) push(name string) { p.stack = append(p.stack, name) }
func (p *InnerTypePrefixes) pop()              { p.stack = p.stack[:len(p.stack)-1] }

func (p *InnerTypePrefixes) strip(typeName string) string {
	for _, enclosing := range p.stack {
		prefix := enclosing + "."
		if len(typeName) > len(prefix) && typeName[:len(prefix)] == prefix {
			return typeName[len(prefix):]
		}
	}
	return typeName
}

func (p *InnerTypePrefixes) ReplaceClass(n *ast.ClassDeclaration) []ast.Statement {
	p.push(n.Name)
	defer p.pop()
	return p.Base.ReplaceClass(n)
}

func (p *InnerTypePrefixes) ReplaceStruct(n *ast.StructDeclaration) []ast.Statement {
	p.push(n.Name)
	defer p.pop()
	return p.Base.ReplaceStruct(n)
}

func (p *InnerTypePrefixes) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	p.push(n.Name)
	defer p.pop()
	return p.Base.ReplaceEnum(n)
}

func (p *InnerTypePrefixes) ReplaceProtocol(n *ast.ProtocolDeclaration) []ast.Statement {
	p.push(n.Name)
	defer p.pop()
	return p.Base.ReplaceProtocol(n)
}

func (p *InnerTypePrefixes) ReplaceExpr(e ast.Expression) ast.Expression {
	if len(p.stack) == 0 {
		return p.Base.ReplaceExpr(e)
	}
	if typeExpr, ok := e.(*ast.TypeExpression); ok {
		cp := *typeExpr
		cp.Name = p.strip(typeExpr.Name)
		return &cp
	}
	return p.Base.ReplaceExpr(e)
}

func (p *InnerTypePrefixes) ProcessVariable(n *ast.VariableDeclaration) *ast.VariableDeclaration {
	cp := p.Base.ProcessVariable(n)
	if len(p.stack) > 0 && cp.TypeAnnotation != "" {
		cp.TypeAnnotation = p.strip(cp.TypeAnnotation)
	}
	return cp
}
