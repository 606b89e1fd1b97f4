package coax

import (
	"context"
	"reflect"
)

// Resolve returns the action for coercing an input of the given shape
// into the destination named by target and rt. rt may be nil when no
// physical type is in play; the per-type layer simply misses then.
//
// Precedence, first hit wins:
//
//  1. the per-type record's slot for the shape
//  2. the per-target record's slot for the shape
//  3. legacy flags: empty arrays and empty strings coerce to null or
//     fail on their Accept flags; float input into integer targets
//     converts or fails on AcceptFloatAsInt; integer, float and
//     boolean targets fail outright when AllowScalarCoercion is off
//  4. the store default
//
// Resolve is total: every input yields a usable Action, with "cannot
// coerce" expressed as ActionFail.
func (s *Store) Resolve(f Features, target Target, rt reflect.Type, shape Shape) Action {
	// First, an exact match for the physical type
	if s.perType != nil && rt != nil {
		if p := s.perType[rt]; p != nil {
			if act, ok := p.Action(shape); ok {
				return act
			}
		}
	}

	// If not, maybe by logical target
	if s.perTarget != nil {
		if p := s.perTarget[target]; p != nil {
			if act, ok := p.Action(shape); ok {
				return act
			}
		}
	}

	// Otherwise the legacy flags may have the answer. Each hit below
	// is terminal so that disabling a flag means fail, not fall
	// through to the default.
	if shape == ShapeEmptyArray {
		act := ActionFail
		if f.IsEnabled(AcceptEmptyArrayAsNull) {
			act = ActionAsNull
		}
		emitResolveLegacy(context.Background(), target, rt, shape, "empty-array", act)
		return act
	}
	if shape == ShapeEmptyString {
		act := ActionFail
		if f.IsEnabled(AcceptEmptyStringAsNull) {
			act = ActionAsNull
		}
		emitResolveLegacy(context.Background(), target, rt, shape, "empty-string", act)
		return act
	}
	if shape == ShapeFloat && target == TargetInteger {
		act := ActionTryConvert
		if !f.IsEnabled(AcceptFloatAsInt) {
			act = ActionFail
		}
		emitResolveLegacy(context.Background(), target, rt, shape, "float-as-int", act)
		return act
	}

	if target == TargetInteger || target == TargetFloat || target == TargetBoolean {
		if !f.IsEnabled(AllowScalarCoercion) {
			emitResolveLegacy(context.Background(), target, rt, shape, "scalar-gate", ActionFail)
			return ActionFail
		}
	}

	// And all else failing, the store default.
	return s.defaultAction
}

// ResolveBlank returns the action for a blank string input: one that
// is whitespace-only with length at least one. A blank either folds
// into the empty-string rules, when a blank-as-empty switch says so,
// or resolves to the caller's ifBlankDisallowed action untouched.
//
// The blank-as-empty switch and the empty-string action are read from
// the per-type record first, then the per-target record fills
// whichever of the two is still unset; the store-wide switch is the
// final default. When blanks fold and neither record pins an
// empty-string action, AcceptEmptyStringAsNull decides, as in
// Resolve.
func (s *Store) ResolveBlank(f Features, target Target, rt reflect.Type, ifBlankDisallowed Action) Action {
	blank, blankSet := false, false
	action, actionSet := Action(0), false

	// First, an exact match for the physical type
	if s.perType != nil && rt != nil {
		if p := s.perType[rt]; p != nil {
			blank, blankSet = p.BlankAsEmpty()
			action, actionSet = p.Action(ShapeEmptyString)
		}
	}

	// If not, maybe by logical target
	if s.perTarget != nil {
		if p := s.perTarget[target]; p != nil {
			if !blankSet {
				blank, blankSet = p.BlankAsEmpty()
			}
			if !actionSet {
				action, actionSet = p.Action(ShapeEmptyString)
			}
		}
	}

	if !blankSet {
		blank = s.blankAsEmpty
	}

	// Blanks stay blanks: the caller's fallback stands.
	if !blank {
		return ifBlankDisallowed
	}

	// Blanks fold into empties; a pinned empty-string action covers
	// this one.
	if actionSet {
		return action
	}

	// Failing that, the one legacy flag that can answer.
	act := ActionFail
	if f.IsEnabled(AcceptEmptyStringAsNull) {
		act = ActionAsNull
	}
	emitResolveLegacy(context.Background(), target, rt, ShapeEmptyString, "empty-string", act)
	return act
}
