package coax

// Features carries the legacy compatibility flags consulted when no
// explicit policy covers a coercion. The engine never stores a
// Features value: callers hold whichever flags are active for the
// current operation and pass them to Resolve and ResolveBlank, so one
// store can serve callers running under different flag sets.
type Features uint32

const (
	// AcceptEmptyArrayAsNull maps an empty array input onto the null
	// decision instead of a failure. Off by default.
	AcceptEmptyArrayAsNull Features = 1 << iota

	// AcceptEmptyStringAsNull maps an empty string input onto the null
	// decision instead of a failure. Off by default.
	AcceptEmptyStringAsNull

	// AcceptFloatAsInt permits truncating conversion of floating-point
	// input into integer destinations. On by default.
	AcceptFloatAsInt

	// AllowScalarCoercion permits shape-changing coercion into the
	// numeric and boolean categories at all. When disabled, those
	// destinations fail unless an explicit policy allows them. On by
	// default.
	AllowScalarCoercion
)

// DefaultFeatures is the out-of-the-box flag set.
const DefaultFeatures = AcceptFloatAsInt | AllowScalarCoercion

// IsEnabled reports whether every flag in mask is set.
func (f Features) IsEnabled(mask Features) bool {
	return f&mask == mask
}

// With returns a copy of f with the given flags set.
func (f Features) With(mask Features) Features {
	return f | mask
}

// Without returns a copy of f with the given flags cleared.
func (f Features) Without(mask Features) Features {
	return f &^ mask
}
