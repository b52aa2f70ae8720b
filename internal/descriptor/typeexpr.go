package descriptor

import "strings"

// TypeKind is the outer constructor of a type expression.
type TypeKind int

const (
	TypeBasic TypeKind = iota
	TypeNamed
	TypePointer
	TypeSlice
	TypeArray
	TypeMap
	TypeChan
	TypeFunc
	TypeInterface
)

// TypeExpr is a purely syntactic view of a field's declared type. It
// carries the outer constructor and its nesting, never resolved
// semantic information; downstream classification matches on shape and
// name only.
type TypeExpr struct {
	Kind    TypeKind
	Name    string // basic name, or last path segment of a named type
	PkgPath string // import path of a named type, "" otherwise
	// Underlying is the basic kind of a named type's underlying type
	// when it is basic ("string", "int", ...), "" otherwise.
	Underlying string
	// Args holds nested expressions: element type for pointer, slice,
	// array and chan; key then value for map; type arguments for a
	// generic named type.
	Args []TypeExpr
	// Str is the type rendered in Go syntax, as the front-end saw it.
	Str string
}

// Elem returns the single nested expression for wrapper shapes
// (pointer, slice, array, chan, generic-of-one), or nil.
func (t TypeExpr) Elem() *TypeExpr {
	switch t.Kind {
	case TypePointer, TypeSlice, TypeArray, TypeChan:
		if len(t.Args) > 0 {
			return &t.Args[0]
		}
	case TypeNamed:
		if len(t.Args) == 1 {
			return &t.Args[0]
		}
	case TypeMap:
		if len(t.Args) == 2 {
			return &t.Args[1]
		}
	}
	return nil
}

// IsGeneric reports whether the expression is a named type applied to
// type arguments.
func (t TypeExpr) IsGeneric() bool {
	return t.Kind == TypeNamed && len(t.Args) > 0
}

// QualifiedName returns "pkgpath.Name" for imported named types and the
// bare name otherwise.
func (t TypeExpr) QualifiedName() string {
	if t.PkgPath == "" {
		return t.Name
	}
	return t.PkgPath + "." + t.Name
}

// String returns the rendered Go syntax. Str is preferred; a minimal
// rendering is rebuilt for hand-constructed expressions.
func (t TypeExpr) String() string {
	if t.Str != "" {
		return t.Str
	}
	switch t.Kind {
	case TypePointer:
		if e := t.Elem(); e != nil {
			return "*" + e.String()
		}
		return "*"
	case TypeSlice:
		if e := t.Elem(); e != nil {
			return "[]" + e.String()
		}
		return "[]"
	case TypeMap:
		if len(t.Args) == 2 {
			return "map[" + t.Args[0].String() + "]" + t.Args[1].String()
		}
		return "map"
	case TypeChan:
		if e := t.Elem(); e != nil {
			return "chan " + e.String()
		}
		return "chan"
	case TypeInterface:
		if t.Name != "" {
			return t.Name
		}
		return "any"
	case TypeFunc:
		return "func()"
	default:
		if len(t.Args) == 0 {
			return t.Name
		}
		args := make([]string, 0, len(t.Args))
		for _, a := range t.Args {
			args = append(args, a.String())
		}
		return t.Name + "[" + strings.Join(args, ", ") + "]"
	}
}
