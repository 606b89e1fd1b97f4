// Package coax decides how structured-data deserializers respond when
// an input value's syntactic shape does not match its destination
// type: convert it, substitute null or empty, or fail.
//
// coax owns the decision, never the conversion. A deserializer asks
// "float literal into an integer field, what now?" and gets an Action
// token back; parsing input and acting on the token stay with the
// caller. Values whose shape already matches their destination never
// reach this package.
//
// # Shapes and Targets
//
// A coercion is keyed by the observed input Shape (float literal,
// empty string, ...) and by the destination, which is named two ways:
// a logical Target category (integer, slice, time, ...) and an
// optional physical reflect.Type. TargetOf classifies a reflect.Type
// into its Target.
//
// # Policy Store
//
// A Store holds coercion policies in two layers plus a default:
//
//	store := coax.NewStore()
//
//	// every boolean destination
//	store.TargetPolicy(coax.TargetBoolean).
//	    Set(coax.ShapeInteger, coax.ActionTryConvert)
//
//	// one specific type, beats the layer above
//	store.TypePolicy(reflect.TypeOf(Flags{})).
//	    Set(coax.ShapeInteger, coax.ActionFail)
//
// # Resolution
//
//	act := store.Resolve(coax.DefaultFeatures, coax.TargetBoolean, rt, coax.ShapeInteger)
//
// Resolve consults the physical layer, then the logical layer, then
// the legacy compatibility flags carried in Features, and finally the
// store default. It always returns a usable Action; "cannot coerce"
// is the ActionFail value, not an error. Blank (all-whitespace)
// strings go through ResolveBlank, which layers the blank-as-empty
// switches the same way.
//
// # Struct Tags
//
// Fields scans a struct type and returns per-field coercion plans,
// letting field declarations carry their own rules:
//
//	type Order struct {
//	    Count int    `coerce.float:"fail"`
//	    Note  string `coerce.blank:"empty"`
//	    State string `coerce.target:"enum"`
//	}
//
//	fields, err := coax.Fields[Order]()
//
// Each plan names the field's Target (inferred, or forced with
// coerce.target) and bundles any tag-declared rules into a Policy.
//
// # Profiles
//
// The logical layer can be configured from a YAML profile instead of
// code:
//
//	default-action: try-convert
//	blank-as-empty: true
//	targets:
//	  integer:
//	    float: fail
//	    empty-string: as-null
//
//	profile, err := coax.LoadProfile(data)
//	err = profile.Apply(store)
//
// # Concurrency
//
// A Store is built, then frozen: configure it on one goroutine, hand
// it to Resolve callers, and do not touch the mutators again. Frozen
// stores are safe for unlimited concurrent Resolve/ResolveBlank use.
// Copy forks an independent store when divergent configuration is
// needed after the freeze.
package coax
