package pass

import "github.com/swiftkt/swiftkt/ast"

// Pass is a single named, single-purpose tree rewrite (spec §4.2's
// "pass" glossary entry), grounded on the teacher's semantic.Pass
// interface (internal/semantic/pass.go) — Name for logging/diagnostics,
// Run to execute. Unlike the teacher's annotate-only passes, Run here
// takes ownership of the input tree and returns a new owned tree (spec
// §3.4): it never mutates file in place.
type Pass interface {
	Name() string
	Run(file *ast.File) *ast.File
}

// RunVisitor applies a Visitor to every top-level statement of a file,
// producing a new File. Concrete passes call this from their Run method
// after constructing themselves (so Base.Self is wired to the right
// receiver for virtual dispatch).
func RunVisitor(v Visitor, file *ast.File) *ast.File {
	return &ast.File{
		Name:         file.Name,
		Declarations: v.ReplaceStatements(file.Declarations),
		TopLevel:     v.ReplaceStatements(file.TopLevel),
	}
}
