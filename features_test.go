package coax

import "testing"

func TestDefaultFeatures(t *testing.T) {
	tests := []struct {
		name string
		flag Features
		want bool
	}{
		{"AcceptFloatAsInt on", AcceptFloatAsInt, true},
		{"AllowScalarCoercion on", AllowScalarCoercion, true},
		{"AcceptEmptyArrayAsNull off", AcceptEmptyArrayAsNull, false},
		{"AcceptEmptyStringAsNull off", AcceptEmptyStringAsNull, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultFeatures.IsEnabled(tt.flag); got != tt.want {
				t.Errorf("DefaultFeatures.IsEnabled(%b) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestFeatures_With(t *testing.T) {
	f := DefaultFeatures.With(AcceptEmptyStringAsNull)

	if !f.IsEnabled(AcceptEmptyStringAsNull) {
		t.Error("With() should set the flag")
	}
	if !f.IsEnabled(AcceptFloatAsInt) {
		t.Error("With() should leave existing flags set")
	}
	if DefaultFeatures.IsEnabled(AcceptEmptyStringAsNull) {
		t.Error("With() should not mutate the receiver")
	}
}

func TestFeatures_Without(t *testing.T) {
	f := DefaultFeatures.Without(AllowScalarCoercion)

	if f.IsEnabled(AllowScalarCoercion) {
		t.Error("Without() should clear the flag")
	}
	if !f.IsEnabled(AcceptFloatAsInt) {
		t.Error("Without() should leave other flags set")
	}
}

func TestFeatures_IsEnabledMultiple(t *testing.T) {
	f := Features(0).With(AcceptEmptyArrayAsNull | AcceptEmptyStringAsNull)

	if !f.IsEnabled(AcceptEmptyArrayAsNull | AcceptEmptyStringAsNull) {
		t.Error("IsEnabled() should report true when every flag in the mask is set")
	}
	if f.IsEnabled(AcceptEmptyArrayAsNull | AcceptFloatAsInt) {
		t.Error("IsEnabled() should report false when any flag in the mask is clear")
	}
}
