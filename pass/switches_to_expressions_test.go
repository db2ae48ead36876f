package pass_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/pass"
)

func intCase(value int64, ret int64) *ast.SwitchCase {
	return &ast.SwitchCase{
		Expressions: []ast.Expression{&ast.IntLiteral{Value: value}},
		Statements: []ast.Statement{
			&ast.ReturnStatement{Value: &ast.IntLiteral{Value: ret}},
		},
	}
}

func TestSwitchesToExpressionsConvertsAllReturnCases(t *testing.T) {
	p := pass.NewSwitchesToExpressions()
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "x"},
		Cases:   []*ast.SwitchCase{intCase(1, 10), intCase(2, 20)},
	}
	in := fileWithTopLevel(sw)
	out := p.Run(in)

	got := out.TopLevel[0].(*ast.SwitchStatement)
	if got.Converts != ast.ConvertsToReturn {
		t.Fatalf("expected ConvertsToReturn, got %v", got.Converts)
	}
	for _, c := range got.Cases {
		if _, ok := c.Statements[len(c.Statements)-1].(*ast.ReturnStatement); ok {
			t.Fatalf("trailing return should have been replaced with a bare expression: %#v", c.Statements)
		}
		if _, ok := c.Statements[len(c.Statements)-1].(*ast.ExpressionStatement); !ok {
			t.Fatalf("expected trailing expression statement, got %#v", c.Statements[len(c.Statements)-1])
		}
	}
}

func TestSwitchesToExpressionsLeavesMixedCasesAlone(t *testing.T) {
	p := pass.NewSwitchesToExpressions()
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "x"},
		Cases: []*ast.SwitchCase{
			intCase(1, 10),
			{
				Expressions: []ast.Expression{&ast.IntLiteral{Value: 2}},
				Statements:  []ast.Statement{&ast.ExpressionStatement{Expr: &ast.IntLiteral{Value: 2}}},
			},
		},
	}
	in := fileWithTopLevel(sw)
	out := p.Run(in)

	got := out.TopLevel[0].(*ast.SwitchStatement)
	if got.Converts != ast.NoConversion {
		t.Fatalf("expected NoConversion for mixed-shape cases, got %v", got.Converts)
	}
}

func TestSwitchesToExpressionsCollapsesIntoPrecedingDeclaration(t *testing.T) {
	p := pass.NewSwitchesToExpressions()
	assignCase := func(value, assign int64) *ast.SwitchCase {
		return &ast.SwitchCase{
			Expressions: []ast.Expression{&ast.IntLiteral{Value: value}},
			Statements: []ast.Statement{
				&ast.AssignmentStatement{
					Target:   &ast.DeclarationReferenceExpression{Name: "result"},
					Operator: "=",
					Value:    &ast.IntLiteral{Value: assign},
				},
			},
		}
	}
	decl := &ast.VariableDeclaration{Name: "result"}
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "x"},
		Cases:   []*ast.SwitchCase{assignCase(1, 10), assignCase(2, 20)},
	}
	in := fileWithTopLevel(decl, sw)
	out := p.Run(in)

	if len(out.TopLevel) != 1 {
		t.Fatalf("expected declaration and switch to collapse into one statement, got %d", len(out.TopLevel))
	}
	collapsed, ok := out.TopLevel[0].(*ast.VariableDeclaration)
	if !ok || collapsed.Name != "result" {
		t.Fatalf("expected collapsed `result` declaration, got %#v", out.TopLevel[0])
	}
	if collapsed.SwitchInit == nil {
		t.Fatalf("expected SwitchInit to be set on the collapsed declaration")
	}
	if collapsed.SwitchInit.Converts != ast.ConvertsToAssignment {
		t.Fatalf("expected ConvertsToAssignment, got %v", collapsed.SwitchInit.Converts)
	}
}

func TestSwitchesToExpressionsDoesNotCollapseWithoutPrecedingDeclaration(t *testing.T) {
	p := pass.NewSwitchesToExpressions()
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "x"},
		Cases: []*ast.SwitchCase{
			{
				Expressions: []ast.Expression{&ast.IntLiteral{Value: 1}},
				Statements: []ast.Statement{
					&ast.AssignmentStatement{
						Target:   &ast.DeclarationReferenceExpression{Name: "result"},
						Operator: "=",
						Value:    &ast.IntLiteral{Value: 10},
					},
				},
			},
		},
	}
	in := fileWithTopLevel(sw)
	out := p.Run(in)

	if len(out.TopLevel) != 1 {
		t.Fatalf("expected the switch to remain standalone, got %d statements", len(out.TopLevel))
	}
	if _, ok := out.TopLevel[0].(*ast.SwitchStatement); !ok {
		t.Fatalf("expected a plain switch statement, got %#v", out.TopLevel[0])
	}
}
