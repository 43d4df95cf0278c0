package gen

//go:generate go tool stringer -type=Shape -linecomment -output=shape_string.go

// Shape is the structural kind of a schema, taken from its "type" keyword
// or from its aggregation keyword.
type Shape int

// Shapes. The aggregation shapes have no kind generator.
const (
	ShapeObject  Shape = iota + 1 // object
	ShapeArray                    // array
	ShapeString                   // string
	ShapeInteger                  // integer
	ShapeNumber                   // number
	ShapeBoolean                  // boolean
	ShapeNull                     // null
	ShapeAllOf                    // allOf
	ShapeAnyOf                    // anyOf
	ShapeOneOf                    // oneOf
)

var shapesByName = map[string]Shape{
	"object":  ShapeObject,
	"array":   ShapeArray,
	"string":  ShapeString,
	"integer": ShapeInteger,
	"number":  ShapeNumber,
	"boolean": ShapeBoolean,
	"null":    ShapeNull,
}

// aggregations are checked in this order when "type" is absent.
var aggregations = []Shape{ShapeAllOf, ShapeAnyOf, ShapeOneOf}

// ParseShape returns the shape of a "type" keyword value.
func ParseShape(name string) (Shape, bool) {
	s, ok := shapesByName[name]
	return s, ok
}
