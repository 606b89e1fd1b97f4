package coax

import (
	"fmt"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=Target -output=target_string.go -trimprefix=Target

// Target is the logical category of a destination type. Policies
// attached to a Target apply to every physical type that classifies
// into it; Store.TypePolicy narrows a rule to one physical type.
type Target int

const (
	_ Target = iota // zero reserved as the invalid Target

	// TargetArray is a fixed-length array destination.
	TargetArray

	// TargetSlice is a variable-length sequence destination.
	TargetSlice

	// TargetMap is a key/value map destination.
	TargetMap

	// TargetStruct is a struct destination bound field by field.
	TargetStruct

	// TargetUntyped is an interface destination with no concrete
	// expectation, such as any.
	TargetUntyped

	// TargetInteger covers the integral numeric kinds.
	TargetInteger

	// TargetFloat covers the floating-point kinds.
	TargetFloat

	// TargetBoolean is a bool destination.
	TargetBoolean

	// TargetEnum is a closed set of named values. Go types carry no
	// marker for this, so TargetEnum is never inferred; it is reached
	// only through an explicit coerce.target tag or profile entry.
	TargetEnum

	// TargetTextual is a string destination.
	TargetTextual

	// TargetBinary is a raw byte sequence destination.
	TargetBinary

	// TargetTime covers time.Time and time.Duration destinations.
	TargetTime

	// TargetOtherScalar covers single-value destinations outside the
	// numeric, boolean and textual categories, such as complex kinds.
	TargetOtherScalar

	// TargetCount is the number of targets defined, including the
	// reserved zero slot. It sizes per-target tables.
	TargetCount = int(iota)
)

var targetNames = map[string]Target{
	"array":        TargetArray,
	"slice":        TargetSlice,
	"map":          TargetMap,
	"struct":       TargetStruct,
	"untyped":      TargetUntyped,
	"integer":      TargetInteger,
	"float":        TargetFloat,
	"boolean":      TargetBoolean,
	"enum":         TargetEnum,
	"textual":      TargetTextual,
	"binary":       TargetBinary,
	"time":         TargetTime,
	"other-scalar": TargetOtherScalar,
}

// ParseTarget resolves the tag/profile spelling of a target, e.g.
// "integer" or "other-scalar". Names are lowercase and case-sensitive.
func ParseTarget(name string) (Target, error) {
	t, ok := targetNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return t, nil
}

// TargetOf classifies a physical type into its logical category.
// Pointers are dereferenced first: a coercion into *T is a coercion
// into T. Returns the zero Target for nil and for types that are not
// meaningful destinations (channels, functions).
func TargetOf(rt reflect.Type) Target {
	if rt == nil {
		return 0
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	// exact matches before kind buckets
	switch rt {
	case reflect.TypeOf(time.Time{}):
		return TargetTime
	case reflect.TypeOf(time.Duration(0)):
		return TargetTime
	}

	switch rt.Kind() {
	case reflect.Array:
		return TargetArray
	case reflect.Slice:
		// any byte slice is binary, matching encoding/json
		if rt.Elem().Kind() == reflect.Uint8 {
			return TargetBinary
		}
		return TargetSlice
	case reflect.Map:
		return TargetMap
	case reflect.Struct:
		return TargetStruct
	case reflect.Interface:
		return TargetUntyped
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TargetInteger
	case reflect.Float32, reflect.Float64:
		return TargetFloat
	case reflect.Bool:
		return TargetBoolean
	case reflect.String:
		return TargetTextual
	case reflect.Complex64, reflect.Complex128:
		return TargetOtherScalar
	default:
		return 0
	}
}
