package driver_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/driver"
	"github.com/swiftkt/swiftkt/pass"
	"github.com/swiftkt/swiftkt/render"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// runOne drives a single file through the canonical pipeline and returns
// its rendered source, mirroring cmd/swiftkt/cmd/translate.go's
// buildScheduler but with nothing disabled.
func runOne(name string, file *ast.File) (string, *diag.Sink) {
	ctx := sharedctx.New()
	sink := diag.NewSink()
	scheduler := pass.DefaultScheduler(ctx, sink)
	results := driver.Run([]*ast.File{file}, scheduler, ctx, sink, driver.Options{
		Render: render.Options{EntryFunctionName: "main"},
	})
	return results[0].Source, sink
}

// Scenario 1: `enum E: Int { case a = 1; case b = 2 }` — every element
// carries a raw value and none carry associated ones, so this renders as
// an `enum class` gaining a `rawValue` property and a static factory.
func TestEndToEndEnumWithRawValues(t *testing.T) {
	file := &ast.File{
		Name: "Enum.swift",
		Declarations: []ast.Statement{
			&ast.EnumDeclaration{
				Name:        "E",
				Inheritance: []string{"Int"},
				Elements: []*ast.EnumElement{
					{Name: "a", RawValue: &ast.IntLiteral{Value: 1}},
					{Name: "b", RawValue: &ast.IntLiteral{Value: 2}},
				},
			},
		},
	}

	out, sink := runOne("enum", file)
	if sink.HasFatal() {
		t.Fatalf("unexpected fatal diagnostics: %v", sink.All())
	}
	if !strings.Contains(out, "enum class E {") {
		t.Fatalf("expected a bare enum class header with no primary constructor, got:\n%s", out)
	}
	if strings.Contains(out, "(val rawValue: Int)") {
		t.Fatalf("expected no renderer-synthesized primary constructor alongside the pass's own rawValue property, got:\n%s", out)
	}
	if strings.Count(out, "companion object") != 1 {
		t.Fatalf("expected exactly one companion object (from static-members, not a second from the renderer), got:\n%s", out)
	}
	if strings.Count(out, "val rawValue: Int") != 1 {
		t.Fatalf("expected exactly one rawValue property (synthesized once, by raw-values), got:\n%s", out)
	}
	if !strings.Contains(out, "fun init(rawValue: Int): E?") {
		t.Fatalf("expected the raw-values pass's static factory to render, got:\n%s", out)
	}
	snaps.MatchSnapshot(t, "enum_with_raw_values", out)
}

// Scenario 2: `if let x = x as? String { f(x) }` collapses, via
// shadowed-if-let-as-to-is, into the plain condition `x is String`.
func TestEndToEndIfLetAsToIs(t *testing.T) {
	file := &ast.File{
		Name: "IfLet.swift",
		TopLevel: []ast.Statement{
			&ast.IfStatement{
				Conditions: []ast.IfCondition{{
					Declaration: &ast.VariableDeclaration{
						Name: "x",
						Value: &ast.BinaryOpExpression{
							Left:     &ast.DeclarationReferenceExpression{Name: "x"},
							Operator: "as?",
							Right:    &ast.TypeExpression{Name: "String"},
						},
					},
				}},
				Then: []ast.Statement{
					&ast.ExpressionStatement{Expr: &ast.CallExpression{
						Callee:    &ast.DeclarationReferenceExpression{Name: "f"},
						Arguments: []ast.CallArgument{{Value: &ast.DeclarationReferenceExpression{Name: "x"}}},
					}},
				},
			},
		},
	}

	out, sink := runOne("iflet", file)
	if sink.HasFatal() {
		t.Fatalf("unexpected fatal diagnostics: %v", sink.All())
	}
	if !strings.Contains(out, "is String") {
		t.Fatalf("expected the shadowed cast to collapse to an `is` check, got:\n%s", out)
	}
	if strings.Contains(out, "as?") {
		t.Fatalf("expected the `as?` cast to be gone, got:\n%s", out)
	}
	snaps.MatchSnapshot(t, "if_let_as_to_is", out)
}

// Scenario 3: `switch k { case 1: return "a" case 2: return "b" default:
// return "c" }` converges on return, collapsing into `return when (k) {
// ... }`.
func TestEndToEndSwitchAsExpression(t *testing.T) {
	file := &ast.File{
		Name: "Switch.swift",
		TopLevel: []ast.Statement{
			&ast.SwitchStatement{
				Subject: &ast.DeclarationReferenceExpression{Name: "k"},
				Cases: []*ast.SwitchCase{
					{
						Expressions: []ast.Expression{&ast.IntLiteral{Value: 1}},
						Statements:  []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "a"}}},
					},
					{
						Expressions: []ast.Expression{&ast.IntLiteral{Value: 2}},
						Statements:  []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "b"}}},
					},
					{
						IsDefault:  true,
						Statements: []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "c"}}},
					},
				},
			},
		},
	}

	out, sink := runOne("switch", file)
	if sink.HasFatal() {
		t.Fatalf("unexpected fatal diagnostics: %v", sink.All())
	}
	if !strings.Contains(out, "when") {
		t.Fatalf("expected the converged switch to render as a when expression, got:\n%s", out)
	}
	snaps.MatchSnapshot(t, "switch_as_expression", out)
}

// Scenario 4: `guard x != nil else { return }` drops its double negative,
// rendering as `if (x == null) { return }`.
func TestEndToEndGuardDoubleNegative(t *testing.T) {
	file := &ast.File{
		Name: "Guard.swift",
		TopLevel: []ast.Statement{
			&ast.IfStatement{
				IsGuard: true,
				Conditions: []ast.IfCondition{{
					Expr: &ast.BinaryOpExpression{
						Left:     &ast.DeclarationReferenceExpression{Name: "x"},
						Operator: "!=",
						Right:    &ast.NilLiteral{},
					},
				}},
				Then: []ast.Statement{&ast.ReturnStatement{}},
			},
		},
	}

	out, sink := runOne("guard", file)
	if sink.HasFatal() {
		t.Fatalf("unexpected fatal diagnostics: %v", sink.All())
	}
	if !strings.Contains(out, "==") || strings.Contains(out, "!=") {
		t.Fatalf("expected the guard's != to flip to ==, got:\n%s", out)
	}
	snaps.MatchSnapshot(t, "guard_double_negative", out)
}

// Scenario 5: `if x == nil { return 0 }` collapses into the expression
// statement `x ?: return 0`.
func TestEndToEndReturnIfNil(t *testing.T) {
	file := &ast.File{
		Name: "ReturnIfNil.swift",
		TopLevel: []ast.Statement{
			&ast.IfStatement{
				Conditions: []ast.IfCondition{{
					Expr: &ast.BinaryOpExpression{
						Left:     &ast.DeclarationReferenceExpression{Name: "x"},
						Operator: "==",
						Right:    &ast.NilLiteral{},
					},
				}},
				Then: []ast.Statement{&ast.ReturnStatement{Value: &ast.IntLiteral{Value: 0}}},
			},
		},
	}

	out, sink := runOne("returnifnil", file)
	if sink.HasFatal() {
		t.Fatalf("unexpected fatal diagnostics: %v", sink.All())
	}
	if !strings.Contains(out, "?:") {
		t.Fatalf("expected the collapsed elvis-return form, got:\n%s", out)
	}
	snaps.MatchSnapshot(t, "return_if_nil", out)
}

// Scenario 6: `class C { static func f() {} func g() {} }` moves its
// static function into a synthesized companion object.
func TestEndToEndStaticMemberPlacement(t *testing.T) {
	file := &ast.File{
		Name: "Static.swift",
		Declarations: []ast.Statement{
			&ast.ClassDeclaration{
				Name: "C",
				Members: []ast.Statement{
					&ast.FunctionDeclaration{Name: "f", IsStatic: true},
					&ast.FunctionDeclaration{Name: "g"},
				},
			},
		},
	}

	out, sink := runOne("static", file)
	if sink.HasFatal() {
		t.Fatalf("unexpected fatal diagnostics: %v", sink.All())
	}
	if !strings.Contains(out, "companion object") {
		t.Fatalf("expected a synthesized companion object, got:\n%s", out)
	}
	snaps.MatchSnapshot(t, "static_member_placement", out)
}
