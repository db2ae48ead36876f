package types

// IsSubtype implements the structural-subtype test used by the template
// engine's pattern matching (spec §4.5): sub is accepted wherever a value
// of type super is expected.
//
// Two Open Questions from spec §9 are resolved here rather than guessed at
// call sites (see DESIGN.md):
//
//   - Tuple subtyping pairwise-compares sub's element types against
//     super's element types (not sub against itself, which the reference
//     source's `zip(selfSubTypes, selfSubTypes)` looks like a typo for).
//   - Generic subtyping succeeds when the base names match and every type
//     argument is pairwise a subtype, not only when some path reaches an
//     unconditional `false` deeper in the check.
func IsSubtype(sub, super Type) bool {
	if isSuperName(super) {
		if super.Name == SuperOptional {
			return sub.Kind == Optional
		}
		return true
	}

	switch super.Kind {
	case Optional:
		if sub.Kind == Optional {
			return IsSubtype(*sub.Elem, *super.Elem)
		}
		return IsSubtype(sub, *super.Elem)
	case Named:
		return sub.Kind == Named && sub.Name == super.Name
	case Array:
		return sub.Kind == Array && IsSubtype(*sub.Elem, *super.Elem)
	case Dictionary:
		return sub.Kind == Dictionary &&
			IsSubtype(*sub.Key, *super.Key) &&
			IsSubtype(*sub.Value, *super.Value)
	case Tuple:
		if sub.Kind != Tuple || len(sub.Tuple) != len(super.Tuple) {
			return false
		}
		for i := range sub.Tuple {
			if !IsSubtype(sub.Tuple[i], super.Tuple[i]) {
				return false
			}
		}
		return true
	case Function:
		if sub.Kind != Function || len(sub.Params) != len(super.Params) {
			return false
		}
		for i := range sub.Params {
			// parameters are contravariant: super's parameter must be a
			// subtype of sub's for sub to be usable wherever super is expected
			if !IsSubtype(super.Params[i], sub.Params[i]) {
				return false
			}
		}
		if (sub.Return == nil) != (super.Return == nil) {
			return false
		}
		if sub.Return != nil && !IsSubtype(*sub.Return, *super.Return) {
			return false
		}
		return true
	case Generic:
		if sub.Kind != Generic || sub.Name != super.Name || len(sub.Args) != len(super.Args) {
			return false
		}
		for i := range sub.Args {
			if !IsSubtype(sub.Args[i], super.Args[i]) {
				return false
			}
		}
		return true
	case Dotted:
		return sub.Kind == Dotted && sub.Name == super.Name
	default:
		return false
	}
}

func isSuperName(t Type) bool {
	if t.Kind != Named {
		return false
	}
	switch t.Name {
	case SuperAny, SuperAnyType, SuperHash, SuperCompare, SuperOptional:
		return true
	}
	return false
}

// Reflexive reports IsSubtype(t, t), used by the reflexivity testable
// property (spec §8).
func Reflexive(t Type) bool { return IsSubtype(t, t) }
