package synth

import (
	"fmt"

	"github.com/jamjamjon/aksr/internal/classifier"
	"github.com/jamjamjon/aksr/internal/descriptor"
	"github.com/jamjamjon/aksr/internal/directive"
	"github.com/jamjamjon/aksr/internal/resolver"
)

// RecvShape is how a generated method binds the structure.
type RecvShape int

const (
	// RecvValue takes ownership of the structure and returns it (or a
	// moved field) to the caller.
	RecvValue RecvShape = iota
	// RecvPointer borrows the structure.
	RecvPointer
)

// BodyKind is the language-neutral body contract of one method; the
// emitter renders it into concrete syntax.
type BodyKind int

const (
	// BodySet assigns the parameter to the field.
	BodySet BodyKind = iota
	// BodySetText converts a plain string parameter to the field's
	// named string type before assigning.
	BodySetText
	// BodySetSlice replaces the collection with a copy of the
	// parameter when it is non-empty and leaves the field untouched
	// otherwise. The field never shares a backing array with the
	// caller.
	BodySetSlice
	// BodySetTextSlice converts a []string parameter to the owned
	// element type, then behaves like BodySetSlice.
	BodySetTextSlice
	// BodySetWrap wraps the parameter in the optional container.
	BodySetWrap
	// BodyGetValue returns the field by value.
	BodyGetValue
	// BodyGetRef returns a borrowed reference to the field.
	BodyGetRef
	// BodyInto moves the field out of a consumed structure.
	BodyInto
	// BodyTake moves the field's value out and resets the field to its
	// category's empty value; the structure remains usable.
	BodyTake
	// BodyExtendSlice copies into an empty collection and appends to a
	// non-empty one, prior order first, new elements at the end.
	BodyExtendSlice
	// BodyExtendTextSlice is BodyExtendSlice with []string element
	// conversion.
	BodyExtendTextSlice
	// BodyExtendMap sets the incoming entries on the map, allocating
	// it first when nil.
	BodyExtendMap
)

// MethodSpec is the final abstract description of one generated
// method, ready for an external emitter. It is never mutated after
// synthesis.
type MethodSpec struct {
	Kind       resolver.MethodKind
	Name       string
	Visibility directive.Visibility
	Inline     directive.InlineMode
	Recv       RecvShape
	Body       BodyKind
	Field      descriptor.Field
	// ParamType is the input type, "" for parameterless methods.
	ParamType string
	// ElemType is the owned element type for converting bodies.
	ElemType string
	// ReturnType is the result type; "" means the method returns the
	// structure itself for chaining.
	ReturnType string
}

// StructMethods pairs a structure with its ordered method specs.
type StructMethods struct {
	Struct descriptor.Struct
	Specs  []MethodSpec
}

// ShapeError reports a resolved method whose body contract cannot be
// expressed for the field's concrete type shape (extend on a named
// collection whose append form is unknown). Authors disable the method
// with except=extend.
type ShapeError struct {
	Field string
	Kind  resolver.MethodKind
	Type  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf(
		"field %q: cannot synthesize %s body for type %s",
		e.Field, e.Kind, e.Type,
	)
}

// Synthesize expands resolved plans into concrete method specs, one
// struct at a time, preserving field order and the fixed kind order
// within a field.
func Synthesize(st descriptor.Struct, plans []resolver.MethodPlan) (StructMethods, error) {
	out := StructMethods{Struct: st}
	for _, plan := range plans {
		for _, kind := range resolver.Kinds() {
			method, ok := plan.Methods[kind]
			if !ok {
				continue
			}
			spec, err := synthesizeOne(plan, kind, method)
			if err != nil {
				return StructMethods{}, err
			}
			out.Specs = append(out.Specs, spec)
		}
	}
	return out, nil
}

func synthesizeOne(
	plan resolver.MethodPlan,
	kind resolver.MethodKind,
	method resolver.Method,
) (MethodSpec, error) {
	spec := MethodSpec{
		Kind:       kind,
		Name:       method.Name,
		Visibility: method.Visibility,
		Inline:     method.Inline,
		Field:      plan.Field,
	}
	t := plan.Field.Type

	switch kind {
	case resolver.KindSetter:
		spec.Recv = RecvValue
		shapeSetter(&spec, plan.Category, t)
	case resolver.KindGetter:
		spec.Recv = RecvPointer
		shapeGetter(&spec, plan.Category, t)
	case resolver.KindInto:
		spec.Recv = RecvValue
		spec.Body = BodyInto
		spec.ReturnType = t.String()
	case resolver.KindTake:
		spec.Recv = RecvPointer
		spec.Body = BodyTake
		spec.ReturnType = t.String()
	case resolver.KindExtend:
		spec.Recv = RecvValue
		if err := shapeExtend(&spec, t); err != nil {
			return MethodSpec{}, err
		}
	}
	return spec, nil
}

func shapeSetter(spec *MethodSpec, cat classifier.Category, t descriptor.TypeExpr) {
	switch cat {
	case classifier.CategoryString:
		// Any text-like input: the parameter is a plain string,
		// converted to the owned string kind when the field is named.
		spec.ParamType = "string"
		if t.Kind == descriptor.TypeNamed {
			spec.Body = BodySetText
			return
		}
		spec.Body = BodySet
	case classifier.CategoryOption:
		if t.Kind == descriptor.TypePointer {
			inner := t.Elem()
			spec.Body = BodySetWrap
			spec.ParamType = inner.String()
			return
		}
		spec.Body = BodySet
		spec.ParamType = t.String()
	case classifier.CategoryCollection:
		if t.Kind == descriptor.TypeSlice {
			if elem := t.Elem(); elem != nil && isNamedString(*elem) {
				spec.Body = BodySetTextSlice
				spec.ParamType = "[]string"
				spec.ElemType = elem.String()
				return
			}
			spec.Body = BodySetSlice
			spec.ParamType = t.String()
			return
		}
		spec.Body = BodySet
		spec.ParamType = t.String()
	default:
		spec.Body = BodySet
		spec.ParamType = t.String()
	}
}

func shapeGetter(spec *MethodSpec, cat classifier.Category, t descriptor.TypeExpr) {
	switch cat {
	case classifier.CategoryScalar, classifier.CategoryReference:
		spec.Body = BodyGetValue
		spec.ReturnType = t.String()
	case classifier.CategoryString:
		// Strings are immutable views; by value is the borrow.
		spec.Body = BodyGetValue
		spec.ReturnType = t.String()
	case classifier.CategoryOption:
		if t.Kind == descriptor.TypePointer {
			spec.Body = BodyGetValue
			spec.ReturnType = t.String()
			return
		}
		spec.Body = BodyGetRef
		spec.ReturnType = "*" + t.String()
	case classifier.CategoryCollection:
		if t.Kind == descriptor.TypeSlice || t.Kind == descriptor.TypeMap {
			spec.Body = BodyGetValue
			spec.ReturnType = t.String()
			return
		}
		spec.Body = BodyGetRef
		spec.ReturnType = "*" + t.String()
	default:
		spec.Body = BodyGetRef
		spec.ReturnType = "*" + t.String()
	}
}

func shapeExtend(spec *MethodSpec, t descriptor.TypeExpr) error {
	switch t.Kind {
	case descriptor.TypeSlice:
		if elem := t.Elem(); elem != nil && isNamedString(*elem) {
			spec.Body = BodyExtendTextSlice
			spec.ParamType = "[]string"
			spec.ElemType = elem.String()
			return nil
		}
		spec.Body = BodyExtendSlice
		spec.ParamType = t.String()
		return nil
	case descriptor.TypeMap:
		spec.Body = BodyExtendMap
		spec.ParamType = t.String()
		return nil
	default:
		return &ShapeError{
			Field: spec.Field.Ident(),
			Kind:  resolver.KindExtend,
			Type:  t.String(),
		}
	}
}

func isNamedString(t descriptor.TypeExpr) bool {
	return t.Kind == descriptor.TypeNamed && t.Underlying == "string"
}
