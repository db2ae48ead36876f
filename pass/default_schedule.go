package pass

import (
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// DefaultScheduler builds the canonical translation pipeline in the order
// spec §4.3 mandates, wired against ctx and sink. First round is a fixed
// Schedule since none of its passes read the context, only write to it.
// Second round is deferred into a factory: several of its passes (replace
// templates, capitalize enums, is-operators-in-sealed-classes,
// omit-implicit-enum-prefixes, raise-standard-library-warnings) need a
// *sharedctx.ReadOnly snapshot, which only exists once every file's first
// round has finished.
//
// Ordering constraints baked into this list, per spec §4.3:
//   - record-enums runs after clean-inheritances (it reads cleaned
//     inheritance lists to tell enum classes from sealed classes).
//   - capitalize-enums runs before is-operators-in-sealed-classes (the
//     latter matches against the capitalized element names).
//   - switches-to-expressions runs before remove-breaks-in-switches (once
//     a switch is expression-shaped it no longer needs exhaustiveness
//     breaks, but the conversion itself still inspects them).
//   - shadowed-if-let-as-to-is runs before warn-side-effects-in-if-lets,
//     which runs before rearrange-if-lets, so the side-effect warning sees
//     conditions in their original written order.
func DefaultScheduler(ctx *sharedctx.Context, sink *diag.Sink) *Scheduler {
	return &Scheduler{
		FirstRound: Schedule{
			NewRemoveImplicitDeclarations(),
			NewCleanInheritances(),
			NewRecordTemplates(ctx),
			NewRecordEnums(ctx),
			NewRecordProtocols(ctx),
			NewRecordFunctions(ctx),
		},
		SecondRound: func(ro *sharedctx.ReadOnly) Schedule {
			return Schedule{
				NewReplaceTemplates(ro),
				NewRemoveParentheses(),
				NewRemoveExtraReturnsInInits(),
				NewEquatableOperators(),
				NewRawValues(),
				NewDescriptionAsToString(),
				NewOptionalInits(),
				NewStaticMembers(),
				NewFixProtocolContents(),
				NewRemoveExtensions(),
				NewShadowedIfLetAsToIs(),
				NewWarnSideEffectsInIfLets(sink),
				NewRearrangeIfLets(),
				NewSelfToThis(),
				NewAnonymousParameters(),
				NewCovarianceInitsAsCalls(),
				NewReturnsInLambdas(),
				NewRefactorOptionalsInSubscripts(),
				NewAddOptionalsInDotChains(),
				NewRenameOperators(),
				NewCallsToSuperclassInitializers(sink),
				NewCapitalizeEnums(ro),
				NewIsOperatorsInSealedClasses(ro),
				NewSwitchesToExpressions(),
				NewRemoveBreaksInSwitches(),
				NewOmitImplicitEnumPrefixes(ro),
				NewInnerTypePrefixes(),
				NewDoubleNegativesInGuards(),
				NewReturnIfNil(),
				NewRaiseStandardLibraryWarnings(ro, sink),
				NewRaiseMutableValueTypeWarnings(sink),
				NewRaiseNativeDataStructureWarnings(sink),
			}
		},
	}
}
