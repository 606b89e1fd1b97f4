package coax

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register coerce tags with sentinel
	sentinel.Tag("coerce.target")
	sentinel.Tag("coerce.blank")
	for s := Shape(1); int(s) < ShapeCount; s++ {
		sentinel.Tag("coerce." + shapeTags[s])
	}
}

// Field is one entry of a coercion plan: a struct field, its
// physical type, its logical classification and any rules declared
// on the field itself.
type Field struct {
	Name   string       // field name
	Type   reflect.Type // physical field type
	Target Target       // logical classification
	Policy *Policy      // tag-declared rules, nil when the field has none
}

var (
	planCache   = make(map[reflect.Type][]Field)
	planCacheMu sync.RWMutex
)

// Fields returns the coercion plan for struct type T: one entry per
// exported field, in declaration order. Each entry's Target is
// inferred with TargetOf unless a coerce.target tag forces it, and
// its Policy bundles the coerce.<shape> and coerce.blank tags on
// that field. The scan is flat; a nested struct field is one
// TargetStruct entry, and pipelines scan the nested type when they
// descend into it.
//
// Plans are cached per type. Every call returns an independent copy,
// so callers may adjust the entries they got without affecting
// later calls.
func Fields[T any]() ([]Field, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, rt)
	}

	// Fast path: read-lock cache check
	planCacheMu.RLock()
	if plan, ok := planCache[rt]; ok {
		planCacheMu.RUnlock()
		return copyPlan(plan), nil
	}
	planCacheMu.RUnlock()

	// Slow path: build and cache with write-lock
	planCacheMu.Lock()
	defer planCacheMu.Unlock()

	// Double-check pattern
	if plan, ok := planCache[rt]; ok {
		return copyPlan(plan), nil
	}

	plan, err := buildPlan[T]()
	if err != nil {
		return nil, err
	}

	planCache[rt] = plan
	return copyPlan(plan), nil
}

// Reset clears the cached coercion plans.
// This is primarily useful for test isolation.
func Reset() {
	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	planCache = make(map[reflect.Type][]Field)
}

// buildPlan creates the coercion plan for type T by scanning struct
// tags.
func buildPlan[T any]() ([]Field, error) {
	spec := sentinel.Scan[T]()
	plan := make([]Field, 0, len(spec.Fields))

	for _, fm := range spec.Fields {
		f := Field{
			Name:   fm.Name,
			Type:   fm.ReflectType,
			Target: TargetOf(fm.ReflectType),
		}

		policy, target, err := fieldRules(fm)
		if err != nil {
			return nil, err
		}
		if target != 0 {
			f.Target = target
		}
		f.Policy = policy

		plan = append(plan, f)
	}

	return plan, nil
}

// fieldRules interprets the coerce tags on a single field.
func fieldRules(fm sentinel.FieldMetadata) (*Policy, Target, error) {
	var policy *Policy
	var target Target

	if val, ok := fm.Tags["coerce.target"]; ok {
		t, err := ParseTarget(val)
		if err != nil {
			return nil, 0, newTagError(fm.Name, "coerce.target", val, err)
		}
		target = t
	}

	for s := Shape(1); int(s) < ShapeCount; s++ {
		tag := "coerce." + shapeTags[s]
		val, ok := fm.Tags[tag]
		if !ok {
			continue
		}
		act, err := ParseAction(val)
		if err != nil {
			return nil, 0, newTagError(fm.Name, tag, val, err)
		}
		if policy == nil {
			policy = NewPolicy()
		}
		policy.Set(s, act)
	}

	if val, ok := fm.Tags["coerce.blank"]; ok {
		if policy == nil {
			policy = NewPolicy()
		}
		switch val {
		case "empty":
			policy.SetBlankAsEmpty(true)
		case "strict":
			policy.SetBlankAsEmpty(false)
		default:
			return nil, 0, newTagError(fm.Name, "coerce.blank", val, nil)
		}
	}

	return policy, target, nil
}

// copyPlan duplicates a plan deeply enough that callers can mutate
// their copy, policies included.
func copyPlan(plan []Field) []Field {
	out := make([]Field, len(plan))
	copy(out, plan)
	for i, f := range plan {
		if f.Policy != nil {
			out[i].Policy = f.Policy.Copy()
		}
	}
	return out
}
