package coax

import "fmt"

//go:generate go tool stringer -type=Shape -output=shape_string.go -trimprefix=Shape

// Shape is the syntactic form an input value takes in the source
// document, as observed by the deserializer before any conversion.
// Resolution matches a Shape against the expected form of the target
// type; values whose shape already matches never reach this package.
type Shape int

const (
	_ Shape = iota // zero reserved as the invalid Shape

	// ShapeArray is a non-empty array value.
	ShapeArray

	// ShapeObject is a non-empty object value.
	ShapeObject

	// ShapeInteger is an integral number literal.
	ShapeInteger

	// ShapeFloat is a floating-point number literal.
	ShapeFloat

	// ShapeBoolean is a true/false literal.
	ShapeBoolean

	// ShapeString is a non-empty string value.
	ShapeString

	// ShapeBinary is embedded binary data (formats that support it).
	ShapeBinary

	// ShapeEmptyArray is an array with no elements.
	ShapeEmptyArray

	// ShapeEmptyObject is an object with no entries.
	ShapeEmptyObject

	// ShapeEmptyString is a string of length zero. Blank (all
	// whitespace) strings are not a Shape of their own; they reach the
	// engine through Store.ResolveBlank instead.
	ShapeEmptyString

	// ShapeCount is the number of shapes defined, including the
	// reserved zero slot. It sizes per-shape tables.
	ShapeCount = int(iota)
)

// shapeTags holds the tag/profile spelling for each shape.
var shapeTags = [ShapeCount]string{
	ShapeArray:       "array",
	ShapeObject:      "object",
	ShapeInteger:     "integer",
	ShapeFloat:       "float",
	ShapeBoolean:     "boolean",
	ShapeString:      "string",
	ShapeBinary:      "binary",
	ShapeEmptyArray:  "empty-array",
	ShapeEmptyObject: "empty-object",
	ShapeEmptyString: "empty-string",
}

var shapeNames = make(map[string]Shape, ShapeCount)

func init() {
	for s := Shape(1); int(s) < ShapeCount; s++ {
		shapeNames[shapeTags[s]] = s
	}
}

// ParseShape resolves the tag/profile spelling of a shape, e.g.
// "empty-string" or "float". Names are lowercase and case-sensitive.
func ParseShape(name string) (Shape, error) {
	s, ok := shapeNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return s, nil
}
