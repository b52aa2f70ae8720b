package resolver

import (
	"fmt"

	"github.com/jamjamjon/aksr/internal/classifier"
	"github.com/jamjamjon/aksr/internal/descriptor"
	"github.com/jamjamjon/aksr/internal/directive"
)

// MethodKind identifies one generable method family.
type MethodKind int

const (
	KindSetter MethodKind = iota
	KindGetter
	KindInto
	KindTake
	KindExtend
)

var kindNames = map[MethodKind]string{
	KindSetter: "setter",
	KindGetter: "getter",
	KindInto:   "into",
	KindTake:   "take",
	KindExtend: "extend",
}

func (k MethodKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every method kind in the fixed synthesis order.
func Kinds() []MethodKind {
	return []MethodKind{KindSetter, KindGetter, KindInto, KindTake, KindExtend}
}

// Method is the resolved decision for one method kind: its snake_case
// name plus visibility and inline metadata. Only kinds that will be
// generated are recorded in a MethodPlan.
type Method struct {
	Name       string
	Visibility directive.Visibility
	Inline     directive.InlineMode
}

// MethodPlan is the per-field output of resolution and the sole input
// of synthesis.
type MethodPlan struct {
	Field      descriptor.Field
	Category   classifier.Category
	Directives directive.Set
	Methods    map[MethodKind]Method
}

// Has reports whether the plan generates the given kind.
func (p MethodPlan) Has(kind MethodKind) bool {
	_, ok := p.Methods[kind]
	return ok
}

// CapabilityError reports a directive requesting a method kind that is
// impossible for the field's type category. It aborts generation for
// the whole structure; a silently ignored misconfiguration would hide
// the author's mistake.
type CapabilityError struct {
	Field    string
	Feature  string
	Category classifier.Category
	Type     string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf(
		"field %q: feature %q is impossible for %s type %s",
		e.Field, e.Feature, e.Category, e.Type,
	)
}
