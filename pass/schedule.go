package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// Schedule is an ordered, named list of passes run as one round (spec
// §4.3). Ordering within a Schedule is significant; Scheduler never
// reorders its entries.
type Schedule []Pass

// Run executes every pass in order, threading the file through each one.
func (s Schedule) Run(file *ast.File) *ast.File {
	for _, p := range s {
		file = p.Run(file)
	}
	return file
}

// Scheduler orchestrates the first-round / second-round split from spec
// §4.3: first round populates the shared context, second round rewrites
// using it read-only, stopping early if the first round reported a
// structural error (spec §7 propagation policy, grounded on the early-stop
// rule the teacher's own compile driver applies between its analysis and
// codegen stages).
//
// SecondRound is a factory rather than a prebuilt Schedule because several
// second-round passes (ReplaceTemplates, CapitalizeEnums, and friends) close
// over a *sharedctx.ReadOnly snapshot that by construction cannot exist
// until the first round has finished populating the context. Building the
// schedule eagerly would force those passes to snapshot an empty context.
type Scheduler struct {
	FirstRound  Schedule
	SecondRound func(ro *sharedctx.ReadOnly) Schedule
}

// Run executes both rounds against file, reporting diagnostics to sink. If
// the first round left a structural error in sink, the second round is
// skipped and the first round's output is returned unchanged.
func (s *Scheduler) Run(file *ast.File, ctx *sharedctx.Context, sink *diag.Sink) *ast.File {
	file = s.FirstRound.Run(file)
	if sink.HasFatal() {
		return file
	}
	return s.SecondRound(ctx.ReadOnly()).Run(file)
}
