package ident_test

import (
	"testing"

	"github.com/swiftkt/swiftkt/ident"
)

func TestEqualIgnoresCase(t *testing.T) {
	if !ident.Equal("North", "north") {
		t.Fatalf("expected North and north to be equal ignoring case")
	}
	if ident.Equal("North", "South") {
		t.Fatalf("expected North and South to differ")
	}
}

func TestContains(t *testing.T) {
	list := []string{"North", "South"}
	if !ident.Contains(list, "north") {
		t.Fatalf("expected case-insensitive match for north")
	}
	if ident.Contains(list, "East") {
		t.Fatalf("expected no match for East")
	}
}

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"North": "north",
		"north": "north",
		"":      "",
	}
	for in, want := range cases {
		if got := ident.CamelCase(in); got != want {
			t.Fatalf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPascalCase(t *testing.T) {
	cases := map[string]string{
		"north": "North",
		"North": "North",
		"":      "",
	}
	for in, want := range cases {
		if got := ident.PascalCase(in); got != want {
			t.Fatalf("PascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpperSnakeCase(t *testing.T) {
	cases := map[string]string{
		"clubs":      "CLUBS",
		"clubSuit":   "CLUB_SUIT",
		"HTTPStatus": "HTTPSTATUS",
	}
	for in, want := range cases {
		if got := ident.UpperSnakeCase(in); got != want {
			t.Fatalf("UpperSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCompareOrdersCaseInsensitively(t *testing.T) {
	if ident.Compare("apple", "Banana") >= 0 {
		t.Fatalf("expected apple to sort before Banana ignoring case")
	}
}
