package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
	"github.com/swiftkt/swiftkt/sharedctx"
)

func TestRecordFunctionsRecordsSignatureTranslation(t *testing.T) {
	ctx := sharedctx.New()
	p := pass.NewRecordFunctions(ctx)
	fn := &ast.FunctionDeclaration{
		Name:       "move",
		Parameters: []ast.Parameter{{Name: "dx", TypeAnnotation: "Int"}, {Name: "dy", TypeAnnotation: "Int"}},
		ReturnType: "Bool",
	}
	p.Run(fileWithTopLevel(fn))

	key := sharedctx.FunctionKey{SourceAPIName: "move", FunctionType: "(Int, Int) -> Bool"}
	translation, ok := ctx.ReadOnly().FunctionTranslation(key)
	if !ok || translation.TargetPrefix != "move" || len(translation.ParameterNames) != 2 {
		t.Fatalf("expected a recorded translation for move, got %v, ok=%v", translation, ok)
	}
}

func TestRecordFunctionsMarksPureFunctions(t *testing.T) {
	ctx := sharedctx.New()
	p := pass.NewRecordFunctions(ctx)
	fn := &ast.FunctionDeclaration{Name: "square", Modifiers: []string{"pure"}, Parameters: []ast.Parameter{{Name: "x", TypeAnnotation: "Int"}}}
	p.Run(fileWithTopLevel(fn))
	if !ctx.ReadOnly().IsPureFunction("square(Int) -> Void") {
		t.Fatalf("expected square recorded as a pure function")
	}
}

func TestRecordFunctionsDefaultsVoidReturnType(t *testing.T) {
	ctx := sharedctx.New()
	p := pass.NewRecordFunctions(ctx)
	fn := &ast.FunctionDeclaration{Name: "log"}
	p.Run(fileWithTopLevel(fn))
	key := sharedctx.FunctionKey{SourceAPIName: "log", FunctionType: "() -> Void"}
	if _, ok := ctx.ReadOnly().FunctionTranslation(key); !ok {
		t.Fatalf("expected a recorded translation with Void return type")
	}
}
