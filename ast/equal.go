package ast

import "reflect"

// Equal reports whether two nodes are structurally identical: same variant,
// same payload, recursively. Range is compared like any other field, so two
// otherwise-identical nodes from different source positions are not Equal;
// callers comparing rewritten trees against input trees for pass idempotence
// (spec §8) should strip or ignore ranges first if that distinction doesn't
// matter for their property.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}

// EqualStatements compares two statement slices element-wise.
func EqualStatements(a, b []Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualExpressions compares two expression slices element-wise.
func EqualExpressions(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
