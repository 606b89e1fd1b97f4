package coax

import (
	"errors"
	"testing"
)

func TestTagError_Is(t *testing.T) {
	err := newTagError("Count", "coerce.float", "nope", ErrUnknownAction)

	if !errors.Is(err, ErrInvalidTag) {
		t.Error("TagError should unwrap to ErrInvalidTag")
	}

	if errors.Is(err, ErrInvalidProfile) {
		t.Error("TagError should not match ErrInvalidProfile")
	}
}

func TestTagError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with cause",
			err:  newTagError("Count", "coerce.float", "explode", errors.New(`unknown action: "explode"`)),
			want: `invalid tag coerce.float:"explode" (field Count): unknown action: "explode"`,
		},
		{
			name: "without cause",
			err:  newTagError("Note", "coerce.blank", "maybe", nil),
			want: `invalid tag coerce.blank:"maybe" (field Note)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagError_Unwrap(t *testing.T) {
	err := &TagError{Err: ErrInvalidTag, Field: "Count", Tag: "coerce.float", Value: "nope"}

	if unwrapped := err.Unwrap(); unwrapped != ErrInvalidTag {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidTag)
	}
}

func TestProfileError_Is(t *testing.T) {
	err := newProfileError("targets.integer.float", ErrUnknownAction)

	if !errors.Is(err, ErrInvalidProfile) {
		t.Error("ProfileError should unwrap to ErrInvalidProfile")
	}

	if errors.Is(err, ErrInvalidTag) {
		t.Error("ProfileError should not match ErrInvalidTag")
	}
}

func TestProfileError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "key and cause",
			err:  newProfileError("targets.integer.float", errors.New(`unknown action: "explode"`)),
			want: `invalid profile at targets.integer.float: unknown action: "explode"`,
		},
		{
			name: "key only",
			err:  &ProfileError{Err: ErrInvalidProfile, Key: "default-action"},
			want: `invalid profile at default-action`,
		},
		{
			name: "cause only",
			err:  newProfileError("", errors.New("yaml: line 3: mapping values are not allowed")),
			want: `invalid profile: yaml: line 3: mapping values are not allowed`,
		},
		{
			name: "bare",
			err:  &ProfileError{Err: ErrInvalidProfile},
			want: `invalid profile`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfileError_Unwrap(t *testing.T) {
	err := &ProfileError{Err: ErrInvalidProfile, Key: "targets.widget"}

	if unwrapped := err.Unwrap(); unwrapped != ErrInvalidProfile {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidProfile)
	}
}

// --- errors.As extraction tests ---

func TestErrorsAs_TagError(t *testing.T) {
	err := newTagError("State", "coerce.target", "widget", ErrUnknownTarget)

	var tagErr *TagError
	if !errors.As(err, &tagErr) {
		t.Fatal("errors.As should extract *TagError")
	}

	if tagErr.Field != "State" {
		t.Errorf("Field = %q, want %q", tagErr.Field, "State")
	}
	if tagErr.Tag != "coerce.target" {
		t.Errorf("Tag = %q, want %q", tagErr.Tag, "coerce.target")
	}
	if tagErr.Value != "widget" {
		t.Errorf("Value = %q, want %q", tagErr.Value, "widget")
	}
}

func TestErrorsAs_ProfileError(t *testing.T) {
	err := newProfileError("targets.integer.blob", ErrUnknownShape)

	var profileErr *ProfileError
	if !errors.As(err, &profileErr) {
		t.Fatal("errors.As should extract *ProfileError")
	}

	if profileErr.Key != "targets.integer.blob" {
		t.Errorf("Key = %q, want %q", profileErr.Key, "targets.integer.blob")
	}
	if profileErr.Cause != ErrUnknownShape {
		t.Errorf("Cause = %v, want %v", profileErr.Cause, ErrUnknownShape)
	}
}
