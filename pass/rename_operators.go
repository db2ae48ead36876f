package pass

import "github.com/swiftkt/swiftkt/ast"

// renamedOperators maps a source binary operator to its target spelling
// (spec §4.4 "Rename operators").
var renamedOperators = map[string]string{
	"??": "?:",
	"<<": "shl",
	">>": "shr",
	"&":  "and",
	"|":  "or",
	"^":  "xor",
}

// RenameOperators rewrites binary operators with no direct target-language
// spelling into their named equivalent.
type RenameOperators struct{ *Base }

func NewRenameOperators() *RenameOperators {
	p := &RenameOperators{}
	p.Base = NewBase(p)
	return p
}

func (p *RenameOperators) Name() string { return "rename-operators" }

func (p *RenameOperators) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RenameOperators) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	bin, ok := e.(*ast.BinaryOpExpression)
	if !ok {
		return e
	}
	if renamed, ok := renamedOperators[bin.Operator]; ok {
		cp := *bin
		cp.Operator = renamed
		return &cp
	}
	return e
}
