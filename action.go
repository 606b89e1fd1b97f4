package coax

import "fmt"

//go:generate go tool stringer -type=Action -output=action_string.go -trimprefix=Action

// Action is the decision a resolution produces: what the deserializer
// should do with a value whose shape does not match its target.
//
// An Action is an instruction, not an outcome. In particular ActionFail
// does not raise anything here; it tells the calling pipeline to report
// the mismatch through its own error mechanism.
type Action int

const (
	_ Action = iota // zero reserved as the invalid Action

	// ActionFail instructs the caller to reject the value.
	ActionFail

	// ActionTryConvert instructs the caller to attempt conversion
	// (for example parsing a textual number into an integer field).
	ActionTryConvert

	// ActionAsNull instructs the caller to treat the value as null.
	ActionAsNull

	// ActionAsEmpty instructs the caller to substitute the target's
	// empty default (zero value, empty slice, empty map).
	ActionAsEmpty
)

// actionNames maps the spelling used in struct tags and profiles to the
// corresponding Action.
var actionNames = map[string]Action{
	"fail":        ActionFail,
	"try-convert": ActionTryConvert,
	"as-null":     ActionAsNull,
	"as-empty":    ActionAsEmpty,
}

// ParseAction resolves the tag/profile spelling of an action. Names are
// lowercase kebab-case and case-sensitive: "fail", "try-convert",
// "as-null", "as-empty".
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}
