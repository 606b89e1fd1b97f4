package coax

// Policy is a fine-grained coercion rule record: at most one action
// per input shape, plus an optional blank-as-empty override. Slots
// left unset defer to the next layer of resolution; Store.Resolve
// documents the full order.
//
// Policies attached to a Store share its write discipline: configure
// them during setup, then leave them alone once resolution begins.
type Policy struct {
	actions      [ShapeCount]Action
	blankAsEmpty *bool
}

// NewPolicy returns an empty record with every slot unset. Records
// obtained this way are standalone; Store.TargetPolicy and
// Store.TypePolicy create the ones a store consults.
func NewPolicy() *Policy {
	return &Policy{}
}

// Set records the action to take for inputs of the given shape.
// Returns the policy for chaining.
func (p *Policy) Set(s Shape, a Action) *Policy {
	p.actions[s] = a
	return p
}

// Action reports the action recorded for the given shape. The second
// return is false when the slot is unset.
func (p *Policy) Action(s Shape) (Action, bool) {
	a := p.actions[s]
	return a, a != 0
}

// SetBlankAsEmpty records whether blank strings coerce as if they
// were empty for destinations covered by this record, overriding the
// store-wide default either way. Returns the policy for chaining.
func (p *Policy) SetBlankAsEmpty(state bool) *Policy {
	p.blankAsEmpty = &state
	return p
}

// BlankAsEmpty reports the blank-as-empty override. The second return
// is false when no override is recorded.
func (p *Policy) BlankAsEmpty() (bool, bool) {
	if p.blankAsEmpty == nil {
		return false, false
	}
	return *p.blankAsEmpty, true
}

// Copy returns an independent duplicate. Mutating either record
// afterwards leaves the other untouched.
func (p *Policy) Copy() *Policy {
	cp := &Policy{actions: p.actions}
	if p.blankAsEmpty != nil {
		state := *p.blankAsEmpty
		cp.blankAsEmpty = &state
	}
	return cp
}
