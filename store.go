package coax

import (
	"context"
	"reflect"
)

// Store holds coercion policies: a dense table keyed by logical
// Target, a map keyed by physical reflect.Type, and the store-wide
// defaults both layers fall back to. Resolve and ResolveBlank read
// it; everything else here writes it.
//
// A Store is built, then frozen. The mutators and the find-or-create
// accessors are for the configuration phase and are not synchronized;
// once any goroutine calls Resolve, stop calling them. A frozen store
// is safe for unlimited concurrent reads. Use Copy to fork a store
// that needs to diverge after the freeze.
type Store struct {
	defaultAction Action
	blankAsEmpty  bool

	// Both tables allocate on first use so an all-defaults store
	// stays a two-word allocation.
	perTarget *[TargetCount]*Policy
	perType   map[reflect.Type]*Policy
}

// NewStore creates a store with no policies, defaulting to
// ActionTryConvert for anything the legacy flags do not cover and
// treating blank strings as distinct from empty.
func NewStore() *Store {
	s := &Store{defaultAction: ActionTryConvert}
	emitStoreCreated(context.Background(), s.defaultAction)
	return s
}

// SetDefaultAction replaces the action used when no policy and no
// legacy flag covers a coercion. Returns the store for chaining.
func (s *Store) SetDefaultAction(a Action) *Store {
	s.defaultAction = a
	return s
}

// SetBlankAsEmpty sets the store-wide default for whether blank
// (all-whitespace) strings coerce as if they were empty. Policy
// records override it per destination. Returns the store for
// chaining.
func (s *Store) SetBlankAsEmpty(state bool) *Store {
	s.blankAsEmpty = state
	return s
}

// TargetPolicy returns the policy record for a logical target,
// allocating an empty one on first access. The same record is
// returned every time, so rules accumulate across calls.
func (s *Store) TargetPolicy(t Target) *Policy {
	if s.perTarget == nil {
		s.perTarget = new([TargetCount]*Policy)
	}
	p := s.perTarget[t]
	if p == nil {
		p = NewPolicy()
		s.perTarget[t] = p
		emitTargetPolicyCreated(context.Background(), t)
	}
	return p
}

// TypePolicy returns the policy record for a physical type,
// allocating an empty one on first access. The same record is
// returned every time, so rules accumulate across calls.
func (s *Store) TypePolicy(rt reflect.Type) *Policy {
	if s.perType == nil {
		s.perType = make(map[reflect.Type]*Policy)
	}
	p := s.perType[rt]
	if p == nil {
		p = NewPolicy()
		s.perType[rt] = p
		emitTypePolicyCreated(context.Background(), rt)
	}
	return p
}

// Copy returns an independent duplicate: same defaults, every policy
// record deep-copied. Mutations on either store or on any of its
// records never show through to the other.
func (s *Store) Copy() *Store {
	cp := &Store{
		defaultAction: s.defaultAction,
		blankAsEmpty:  s.blankAsEmpty,
	}
	targets := 0
	if s.perTarget != nil {
		table := new([TargetCount]*Policy)
		for i, p := range s.perTarget {
			if p != nil {
				table[i] = p.Copy()
				targets++
			}
		}
		cp.perTarget = table
	}
	if s.perType != nil {
		cp.perType = make(map[reflect.Type]*Policy, len(s.perType))
		for rt, p := range s.perType {
			cp.perType[rt] = p.Copy()
		}
	}
	emitStoreForked(context.Background(), targets, len(s.perType))
	return cp
}
