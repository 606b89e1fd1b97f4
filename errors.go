package coax

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownAction indicates a name that matches no defined Action.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownShape indicates a name that matches no defined Shape.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrUnknownTarget indicates a name that matches no defined Target.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrInvalidTag indicates a coerce struct tag has an invalid value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNotStruct indicates a scan of a type that is not a struct.
	ErrNotStruct = errors.New("not a struct type")

	// ErrInvalidProfile indicates a profile document that cannot be
	// decoded or applied.
	ErrInvalidProfile = errors.New("invalid profile")
)

// TagError reports a coerce struct tag that could not be interpreted.
// It wraps ErrInvalidTag with the field, tag key and offending value.
type TagError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag)
	Field string // Field carrying the tag
	Tag   string // Tag key, e.g. "coerce.float"
	Value string // Offending tag value
	Cause error  // Original parse error, if any
}

func (e *TagError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s:%q (field %s): %v", e.Err.Error(), e.Tag, e.Value, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s %s:%q (field %s)", e.Err.Error(), e.Tag, e.Value, e.Field)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// ProfileError reports a profile document that failed to decode or to
// apply. It wraps ErrInvalidProfile with the key path that failed.
type ProfileError struct {
	Err   error  // Underlying sentinel error (ErrInvalidProfile)
	Key   string // Key path that failed, e.g. "targets.integer.float"
	Cause error  // Original decode or parse error
}

func (e *ProfileError) Error() string {
	switch {
	case e.Key != "" && e.Cause != nil:
		return fmt.Sprintf("%s at %s: %v", e.Err.Error(), e.Key, e.Cause)
	case e.Key != "":
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Key)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// newTagError creates a TagError for an uninterpretable coerce tag.
func newTagError(field, tag, value string, cause error) error {
	return &TagError{
		Err:   ErrInvalidTag,
		Field: field,
		Tag:   tag,
		Value: value,
		Cause: cause,
	}
}

// newProfileError creates a ProfileError for a failed decode or apply.
func newProfileError(key string, cause error) error {
	return &ProfileError{
		Err:   ErrInvalidProfile,
		Key:   key,
		Cause: cause,
	}
}
