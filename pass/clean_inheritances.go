package pass

import "github.com/swiftkt/swiftkt/ast"

// sourceOnlyProtocols are source-standard-library protocols with no
// target-language counterpart worth declaring as an inheritance clause;
// the behavior they request (equality, hashing, string conversion, raw
// value access) is handled by dedicated passes instead (equatable-
// operators, description-as-toString, raw-values).
var sourceOnlyProtocols = map[string]bool{
	"Equatable":               true,
	"Hashable":                true,
	"CustomStringConvertible": true,
	"RawRepresentable":        true,
	"Codable":                 true,
	"Comparable":              true,
}

// rawRepresentableBaseTypes are the primitive types an enum's
// `: Int`/`: String`/... inheritance names to declare its raw-value type;
// once recorded by record-enums, the renderer expresses the raw value via
// a dedicated property rather than an inheritance clause.
var rawRepresentableBaseTypes = map[string]bool{
	"Int": true, "UInt": true, "Double": true, "Float": true,
	"String": true, "Character": true, "Bool": true,
}

// CleanInheritances strips source-only protocols and raw-representable
// base types from every declaration's inheritance list (spec §4.3 first
// round #2).
type CleanInheritances struct{ *Base }

func NewCleanInheritances() *CleanInheritances {
	p := &CleanInheritances{}
	p.Base = NewBase(p)
	return p
}

func (p *CleanInheritances) Name() string { return "clean-inheritances" }

func (p *CleanInheritances) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func clean(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if sourceOnlyProtocols[n] || rawRepresentableBaseTypes[n] {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (p *CleanInheritances) ReplaceClass(n *ast.ClassDeclaration) []ast.Statement {
	n.Inheritance = clean(n.Inheritance)
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}

func (p *CleanInheritances) ReplaceStruct(n *ast.StructDeclaration) []ast.Statement {
	n.Inheritance = clean(n.Inheritance)
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}

func (p *CleanInheritances) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	n.Inheritance = clean(n.Inheritance)
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}

func (p *CleanInheritances) ReplaceProtocol(n *ast.ProtocolDeclaration) []ast.Statement {
	n.Inheritance = clean(n.Inheritance)
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}

func (p *CleanInheritances) ReplaceExtension(n *ast.ExtensionStatement) []ast.Statement {
	n.Inheritance = clean(n.Inheritance)
	n.Members = p.Self.ReplaceStatements(n.Members)
	return []ast.Statement{n}
}
