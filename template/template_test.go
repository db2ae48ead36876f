package template_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
	"github.com/swiftkt/swiftkt/template"
)

func ref(name string) *ast.DeclarationReferenceExpression {
	return &ast.DeclarationReferenceExpression{Name: name}
}

func freeVar(name, typ string) *ast.DeclarationReferenceExpression {
	return &ast.DeclarationReferenceExpression{TypedBase: ast.TypedBase{Type: typ}, Name: name}
}

func call(callee ast.Expression, args ...ast.Expression) *ast.CallExpression {
	c := &ast.CallExpression{Callee: callee}
	for _, a := range args {
		c.Arguments = append(c.Arguments, ast.CallArgument{Value: a})
	}
	return c
}

func TestMatchFreeVariableBindsSubtree(t *testing.T) {
	pattern := call(ref("print"), freeVar("$0", "Any"))
	candidate := call(ref("print"), &ast.StringLiteral{Value: "hi"})

	bindings, order, ok := template.Match(pattern, candidate)
	if !ok {
		t.Fatalf("expected match")
	}
	if len(order) != 1 || order[0] != "$0" {
		t.Fatalf("unexpected binding order: %v", order)
	}
	if got := bindings["$0"].String(); got != `"hi"` {
		t.Fatalf("unexpected binding: %s", got)
	}
}

func TestMatchRejectsDifferentCallee(t *testing.T) {
	pattern := call(ref("print"), freeVar("$0", "Any"))
	candidate := call(ref("println"), &ast.StringLiteral{Value: "hi"})
	if _, _, ok := template.Match(pattern, candidate); ok {
		t.Fatalf("expected no match for different callee")
	}
}

func TestMatchRejectsArityMismatch(t *testing.T) {
	pattern := call(ref("print"), freeVar("$0", "Any"))
	candidate := call(ref("print"), &ast.StringLiteral{Value: "a"}, &ast.StringLiteral{Value: "b"})
	if _, _, ok := template.Match(pattern, candidate); ok {
		t.Fatalf("expected no match for arity mismatch")
	}
}

func TestMatchSameFreeVariableTwiceRequiresEqualBindings(t *testing.T) {
	pattern := call(ref("same"), freeVar("$0", "Any"), freeVar("$0", "Any"))

	ok1 := call(ref("same"), &ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 1})
	if _, _, ok := template.Match(pattern, ok1); !ok {
		t.Fatalf("expected match when repeated free variable binds the same subtree twice")
	}

	mismatched := call(ref("same"), &ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2})
	if _, _, ok := template.Match(pattern, mismatched); ok {
		t.Fatalf("expected no match when repeated free variable binds different subtrees")
	}
}

func TestReplaceTriesTemplatesInOrder(t *testing.T) {
	entries := []sharedctx.TemplateEntry{
		{Pattern: call(ref("first"), freeVar("$0", "Any")), Target: "firstTarget($0)"},
		{Pattern: call(ref("second"), freeVar("$0", "Any")), Target: "secondTarget($0)"},
	}
	candidate := call(ref("second"), &ast.IntLiteral{Value: 1})

	result, ok := template.Replace(candidate, entries)
	if !ok {
		t.Fatalf("expected a template match")
	}
	if result.TargetString != "secondTarget($0)" {
		t.Fatalf("unexpected target string: %s", result.TargetString)
	}
}

func TestReplaceNoMatch(t *testing.T) {
	entries := []sharedctx.TemplateEntry{
		{Pattern: call(ref("first"), freeVar("$0", "Any")), Target: "firstTarget($0)"},
	}
	candidate := call(ref("other"), &ast.IntLiteral{Value: 1})
	if _, ok := template.Replace(candidate, entries); ok {
		t.Fatalf("expected no match")
	}
}
