package coax

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name string
		want Target
	}{
		{"array", TargetArray},
		{"slice", TargetSlice},
		{"map", TargetMap},
		{"struct", TargetStruct},
		{"untyped", TargetUntyped},
		{"integer", TargetInteger},
		{"float", TargetFloat},
		{"boolean", TargetBoolean},
		{"enum", TargetEnum},
		{"textual", TargetTextual},
		{"binary", TargetBinary},
		{"time", TargetTime},
		{"other-scalar", TargetOtherScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTarget(tt.name)
			if err != nil {
				t.Fatalf("ParseTarget(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseTarget(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseTarget_Unknown(t *testing.T) {
	for _, name := range []string{"", "widget", "Integer", "otherscalar"} {
		_, err := ParseTarget(name)
		if err == nil {
			t.Errorf("ParseTarget(%q) should fail", name)
			continue
		}
		if !errors.Is(err, ErrUnknownTarget) {
			t.Errorf("ParseTarget(%q) error should be ErrUnknownTarget, got %v", name, err)
		}
	}
}

func TestTarget_String(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{TargetSlice, "Slice"},
		{TargetOtherScalar, "OtherScalar"},
		{Target(0), "Target(0)"},
		{Target(77), "Target(77)"},
	}

	for _, tt := range tests {
		if got := tt.target.String(); got != tt.want {
			t.Errorf("Target(%d).String() = %q, want %q", int(tt.target), got, tt.want)
		}
	}
}

type namedInt int

type namedBytes []byte

func TestTargetOf(t *testing.T) {
	tests := []struct {
		name string
		rt   reflect.Type
		want Target
	}{
		{"nil", nil, 0},
		{"int", reflect.TypeFor[int](), TargetInteger},
		{"int8", reflect.TypeFor[int8](), TargetInteger},
		{"uint64", reflect.TypeFor[uint64](), TargetInteger},
		{"named int", reflect.TypeFor[namedInt](), TargetInteger},
		{"float32", reflect.TypeFor[float32](), TargetFloat},
		{"float64", reflect.TypeFor[float64](), TargetFloat},
		{"bool", reflect.TypeFor[bool](), TargetBoolean},
		{"string", reflect.TypeFor[string](), TargetTextual},
		{"byte slice", reflect.TypeFor[[]byte](), TargetBinary},
		{"named byte slice", reflect.TypeFor[namedBytes](), TargetBinary},
		{"string slice", reflect.TypeFor[[]string](), TargetSlice},
		{"int array", reflect.TypeFor[[4]int](), TargetArray},
		{"byte array", reflect.TypeFor[[4]byte](), TargetArray},
		{"map", reflect.TypeFor[map[string]int](), TargetMap},
		{"struct", reflect.TypeFor[struct{ X int }](), TargetStruct},
		{"any", reflect.TypeFor[any](), TargetUntyped},
		{"error interface", reflect.TypeFor[error](), TargetUntyped},
		{"time.Time", reflect.TypeFor[time.Time](), TargetTime},
		{"time.Duration", reflect.TypeFor[time.Duration](), TargetTime},
		{"pointer to int", reflect.TypeFor[*int](), TargetInteger},
		{"pointer to pointer to string", reflect.TypeFor[**string](), TargetTextual},
		{"pointer to time.Time", reflect.TypeFor[*time.Time](), TargetTime},
		{"complex128", reflect.TypeFor[complex128](), TargetOtherScalar},
		{"uintptr", reflect.TypeFor[uintptr](), 0},
		{"chan", reflect.TypeFor[chan int](), 0},
		{"func", reflect.TypeFor[func()](), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetOf(tt.rt); got != tt.want {
				t.Errorf("TargetOf(%v) = %v, want %v", tt.rt, got, tt.want)
			}
		})
	}
}

func TestTargetOf_NeverInfersEnum(t *testing.T) {
	// Enum destinations are reachable only through explicit
	// configuration; no Go type should classify into TargetEnum.
	for _, rt := range []reflect.Type{
		reflect.TypeFor[namedInt](),
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
	} {
		if got := TargetOf(rt); got == TargetEnum {
			t.Errorf("TargetOf(%v) = TargetEnum, want inferred category", rt)
		}
	}
}
