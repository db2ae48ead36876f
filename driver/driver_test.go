package driver_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/driver"
	"github.com/swiftkt/swiftkt/pass"
	"github.com/swiftkt/swiftkt/render"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// recordingPass marks every top-level enum name it sees as sealed, to
// prove the driver wires the same *sharedctx.Context across the first
// round into the read-only snapshot rendering actually consults.
type recordingPass struct {
	ctx *sharedctx.Context
}

func (p *recordingPass) Name() string { return "record-enums-as-sealed" }
func (p *recordingPass) Run(file *ast.File) *ast.File {
	for _, d := range file.Declarations {
		if c, ok := d.(*ast.EnumDeclaration); ok {
			p.ctx.MarkSealedClass(c.Name)
		}
	}
	return file
}

type identityPass struct{}

func (identityPass) Name() string                { return "identity" }
func (identityPass) Run(f *ast.File) *ast.File    { return f }

func TestRunThreadsSharedContextIntoRender(t *testing.T) {
	ctx := sharedctx.New()
	sink := diag.NewSink()
	scheduler := &pass.Scheduler{
		FirstRound: pass.Schedule{&recordingPass{ctx: ctx}},
		SecondRound: func(ro *sharedctx.ReadOnly) pass.Schedule {
			return pass.Schedule{identityPass{}}
		},
	}

	file := &ast.File{
		Name:         "A.swift",
		Declarations: []ast.Statement{&ast.EnumDeclaration{Name: "Foo"}},
	}

	results := driver.Run([]*ast.File{file}, scheduler, ctx, sink, driver.Options{
		Render: render.Options{IndentWith: "\t"},
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	want := "sealed class Foo {\n}\n"
	if results[0].Source != want {
		t.Fatalf("got %q, want %q", results[0].Source, want)
	}
}

func TestRunStopsSecondRoundOnFatalDiagnostic(t *testing.T) {
	ctx := sharedctx.New()
	sink := diag.NewSink()
	sink.StructuralErrorf("first-round-pass", nil, "boom")

	scheduler := &pass.Scheduler{
		FirstRound: pass.Schedule{identityPass{}},
		SecondRound: func(ro *sharedctx.ReadOnly) pass.Schedule {
			t.Fatalf("second round built despite a fatal diagnostic")
			return pass.Schedule{identityPass{}}
		},
	}
	file := &ast.File{Name: "A.swift", Declarations: []ast.Statement{&ast.TypealiasStatement{Name: "A", Target: "B"}}}

	results := driver.Run([]*ast.File{file}, scheduler, ctx, sink, driver.Options{})
	if len(results) != 1 || results[0].Source != "typealias A = B\n" {
		t.Fatalf("unexpected result: %+v", results)
	}
}
