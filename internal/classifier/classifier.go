package classifier

import (
	"fmt"

	"github.com/jamjamjon/aksr/internal/descriptor"
)

// Category is the syntactic capability class of a field's declared
// type. It gates which method kinds are legal for the field.
type Category int

const (
	// CategoryScalar is a copy-cheap primitive; getters return it by
	// value and ownership extraction is never generated.
	CategoryScalar Category = iota
	// CategoryOption is an optional-of-T: a pointer, or a generic
	// named Option.
	CategoryOption
	// CategoryCollection is an owned, growable collection: slice, map,
	// or a generic with a known collection name.
	CategoryCollection
	// CategorySmartPointer is a known single-value wrapper such as
	// atomic.Pointer[T] or weak.Pointer[T].
	CategorySmartPointer
	// CategoryString is string or a named string kind.
	CategoryString
	// CategoryOwned is any other nominal type with no guaranteed cheap
	// empty replacement.
	CategoryOwned
	// CategoryReference is a shared, non-owned shape: chan, func or
	// interface.
	CategoryReference
)

var categoryNames = map[Category]string{
	CategoryScalar:       "scalar",
	CategoryOption:       "option",
	CategoryCollection:   "collection",
	CategorySmartPointer: "smart-pointer",
	CategoryString:       "string",
	CategoryOwned:        "owned",
	CategoryReference:    "reference",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// scalarNames is the fixed copy-primitive whitelist. Membership is by
// name, never by structural guessing.
var scalarNames = map[string]struct{}{
	"bool": {}, "byte": {}, "rune": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {},
	"uintptr": {}, "float32": {}, "float64": {},
	"complex64": {}, "complex128": {},
}

// Named generic wrappers recognized by outer name. Classification is a
// shallow syntactic match: a user-defined type that happens to share an
// outer name with a known wrapper is classified as that wrapper shape.
// That is a documented limitation of the approach, not a defect.
var (
	collectionNames = map[string]struct{}{
		"List": {}, "Set": {}, "Deque": {}, "Heap": {}, "Vector": {},
	}
	smartPointerNames = map[string]struct{}{
		"Pointer": {}, "Weak": {}, "Handle": {}, "Cell": {},
	}
)

// Classifier maps type expressions to categories. Extra copy marker
// types declared by the caller extend the scalar whitelist.
type Classifier struct {
	copyTypes map[string]struct{}
}

// New builds a classifier. copyTypes entries may be bare names or
// qualified "pkgpath.Name" forms.
func New(copyTypes ...string) *Classifier {
	set := make(map[string]struct{}, len(copyTypes))
	for _, t := range copyTypes {
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return &Classifier{copyTypes: set}
}

// Classify returns exactly one category for the expression.
//
// Option is checked before any inner unwrapping, so *[]T classifies as
// option-of-collection rather than being flattened.
func (c *Classifier) Classify(t descriptor.TypeExpr) Category {
	switch t.Kind {
	case descriptor.TypePointer:
		return CategoryOption
	case descriptor.TypeSlice, descriptor.TypeMap:
		return CategoryCollection
	case descriptor.TypeChan, descriptor.TypeFunc, descriptor.TypeInterface:
		return CategoryReference
	case descriptor.TypeBasic:
		if t.Name == "string" {
			return CategoryString
		}
		if _, ok := scalarNames[t.Name]; ok {
			return CategoryScalar
		}
		return CategoryOwned
	case descriptor.TypeArray:
		// Fixed-size arrays cannot grow; they are owned values, not
		// collections in the extend sense.
		return CategoryOwned
	case descriptor.TypeNamed:
		return c.classifyNamed(t)
	default:
		return CategoryOwned
	}
}

func (c *Classifier) classifyNamed(t descriptor.TypeExpr) Category {
	if c.isCopyMarker(t) {
		return CategoryScalar
	}
	if t.IsGeneric() {
		if t.Name == "Option" {
			return CategoryOption
		}
		if _, ok := collectionNames[t.Name]; ok {
			return CategoryCollection
		}
		if _, ok := smartPointerNames[t.Name]; ok {
			return CategorySmartPointer
		}
	}
	if t.Underlying == "string" {
		return CategoryString
	}
	return CategoryOwned
}

func (c *Classifier) isCopyMarker(t descriptor.TypeExpr) bool {
	if _, ok := c.copyTypes[t.Name]; ok {
		return true
	}
	_, ok := c.copyTypes[t.QualifiedName()]
	return ok
}
