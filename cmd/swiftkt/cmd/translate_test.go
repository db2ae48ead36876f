package cmd

import (
	"testing"

	"github.com/swiftkt/swiftkt/diag"
)

func TestKotlinFileNameReplacesExtension(t *testing.T) {
	cases := map[string]string{
		"Shapes.json":       "Shapes.kt",
		"src/Shapes.json":   "Shapes.kt",
		"Shapes.swift":      "Shapes.kt",
		"noext":             "noext.kt",
	}
	for in, want := range cases {
		if got := kotlinFileName(in); got != want {
			t.Errorf("kotlinFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFatalCountCountsOnlyStructuralErrors(t *testing.T) {
	sink := diag.NewSink()
	sink.Warningf("p", nil, "warn")
	sink.UnsupportedConstructf("p", nil, "unsupported")
	if got := fatalCount(sink); got != 0 {
		t.Fatalf("fatalCount = %d, want 0", got)
	}
	sink.StructuralErrorf("p", nil, "bad")
	sink.StructuralErrorf("p", nil, "bad again")
	if got := fatalCount(sink); got != 2 {
		t.Fatalf("fatalCount = %d, want 2", got)
	}
}
