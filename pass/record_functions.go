package pass

import (
	"strings"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// pureModifier marks a function whose body has no observable side effects,
// recorded so ReadOnly.IsPureFunction can tell whether hoisting or
// duplicating a call is safe. No pass in the default schedule consults it;
// warn-side-effects-in-if-lets warns on every call-bound if-let.
const pureModifier = "pure"

// RecordFunctions records every function's signature translation (its
// target-language call shape: name and parameter names) and marks pure
// functions (spec §4.3 first round #6).
type RecordFunctions struct {
	*Base
	ctx *sharedctx.Context
}

func NewRecordFunctions(ctx *sharedctx.Context) *RecordFunctions {
	p := &RecordFunctions{ctx: ctx}
	p.Base = NewBase(p)
	return p
}

func (p *RecordFunctions) Name() string { return "record-functions" }

func (p *RecordFunctions) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RecordFunctions) ProcessFunction(n *ast.FunctionDeclaration) *ast.FunctionDeclaration {
	key := sharedctx.FunctionKey{SourceAPIName: n.Name, FunctionType: functionTypeString(n)}
	names := make([]string, 0, len(n.Parameters))
	for _, param := range n.Parameters {
		names = append(names, param.Name)
	}
	p.ctx.AddFunctionTranslation(key, sharedctx.FunctionTranslation{
		TargetPrefix:   n.Name,
		ParameterNames: names,
	})
	if hasModifier(n.Modifiers, pureModifier) {
		p.ctx.MarkPureFunction(functionSignature(n))
	}
	return n
}

// functionTypeString builds the canonical function-type string
// types.Parse accepts, e.g. "(Int, String) -> Bool".
func functionTypeString(n *ast.FunctionDeclaration) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, param := range n.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.TypeAnnotation)
	}
	sb.WriteString(") -> ")
	if n.ReturnType != "" {
		sb.WriteString(n.ReturnType)
	} else {
		sb.WriteString("Void")
	}
	return sb.String()
}

func functionSignature(n *ast.FunctionDeclaration) string {
	return n.Name + functionTypeString(n)
}
