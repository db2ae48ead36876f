package cmd

import (
	"testing"

	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/sharedctx"
)

func TestBuildSchedulerDisablesPassesInBothRounds(t *testing.T) {
	ctx := sharedctx.New()
	sink := diag.NewSink()

	scheduler := buildScheduler(ctx, sink, map[string]bool{
		"clean-inheritances": true,
		"capitalize-enums":   true,
	})

	for _, p := range scheduler.FirstRound {
		if p.Name() == "clean-inheritances" {
			t.Fatalf("expected clean-inheritances dropped from the first round")
		}
	}

	ro := ctx.ReadOnly()
	for _, p := range scheduler.SecondRound(ro) {
		if p.Name() == "capitalize-enums" {
			t.Fatalf("expected capitalize-enums dropped from the second round")
		}
	}
}
