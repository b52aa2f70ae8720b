package descriptor

import "strconv"

// StructKind distinguishes structs with named fields from positional
// (tuple-style) descriptors referenced by ordinal.
type StructKind int

const (
	KindNamed StructKind = iota
	KindPositional
)

// Struct is one structure to process. Field order is stable and
// determines positional naming for tuple descriptors.
type Struct struct {
	Kind   StructKind
	Name   string
	Fields []Field
}

// Field is one field of a Struct. Name is empty for positional
// descriptors; Index is always the field's position.
type Field struct {
	Name          string
	Index         int
	Type          TypeExpr
	RawDirectives string
}

// Ident returns the identifier fragment used as the default method name
// base: the field name for named structs, the ordinal for positional.
func (f Field) Ident() string {
	if f.Name != "" {
		return f.Name
	}
	return strconv.Itoa(f.Index)
}
