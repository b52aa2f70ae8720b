package directive

import (
	"fmt"
	"sort"
	"strings"
)

// Feature is one generable capability named by allow/except lists.
type Feature int

const (
	FeatureSetter Feature = iota
	FeatureGetter
	FeatureExtend
	FeatureSkip
	FeatureInto
)

var featureNames = map[Feature]string{
	FeatureSetter: "setter",
	FeatureGetter: "getter",
	FeatureExtend: "extend",
	FeatureSkip:   "skip",
	FeatureInto:   "into",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("feature(%d)", int(f))
}

// ParseFeature maps a feature name to its Feature value. The deprecated
// spelling "inc" is still accepted for extend.
func ParseFeature(s string) (Feature, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "setter":
		return FeatureSetter, true
	case "getter":
		return FeatureGetter, true
	case "extend", "inc":
		return FeatureExtend, true
	case "skip":
		return FeatureSkip, true
	case "into":
		return FeatureInto, true
	default:
		return 0, false
	}
}

// FeatureSet is an unordered set of features.
type FeatureSet map[Feature]struct{}

func NewFeatureSet(features ...Feature) FeatureSet {
	set := make(FeatureSet, len(features))
	for _, f := range features {
		set[f] = struct{}{}
	}
	return set
}

func (s FeatureSet) Has(f Feature) bool {
	_, ok := s[f]
	return ok
}

func (s FeatureSet) Add(f Feature) {
	s[f] = struct{}{}
}

// Features returns the members in stable order.
func (s FeatureSet) Features() []Feature {
	out := make([]Feature, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Visibility is the canonical visibility spelling carried through to
// method specs. Exported identifiers come only from VisibilityPublic;
// every narrower scope renders unexported in Go output.
type Visibility string

const (
	VisibilityPublic  Visibility = "pub"
	VisibilityPrivate Visibility = "private"
	VisibilityCrate   Visibility = "pub(crate)"
	VisibilitySelf    Visibility = "pub(self)"
	VisibilitySuper   Visibility = "pub(super)"
)

// Exported reports whether the visibility produces an exported
// identifier.
func (v Visibility) Exported() bool {
	return v == VisibilityPublic
}

// ParseVisibility normalizes a visibility value. Shorthand spellings
// ("public", "crate", "self", "super") map to canonical forms;
// "pub(in path)" is preserved as given.
func ParseVisibility(s string) (Visibility, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pub", "public":
		return VisibilityPublic, true
	case "private":
		return VisibilityPrivate, true
	case "crate", "pub(crate)":
		return VisibilityCrate, true
	case "self", "pub(self)":
		return VisibilitySelf, true
	case "super", "pub(super)":
		return VisibilitySuper, true
	}
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "pub(in ") && strings.HasSuffix(trimmed, ")") {
		return Visibility(trimmed), true
	}
	return "", false
}

// InlineMode is the inlining hint attached to a generated method.
type InlineMode int

const (
	InlineNone InlineMode = iota
	InlineDefault
	InlineAlways
)

func (m InlineMode) String() string {
	switch m {
	case InlineDefault:
		return "default"
	case InlineAlways:
		return "always"
	default:
		return "none"
	}
}

// ParseInline maps an inline value to its mode. Booleans toggle between
// default and none; "always" requests aggressive inlining.
func ParseInline(s string) (InlineMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return InlineAlways, true
	case "true", "yes", "default", "t", "y", "1":
		return InlineDefault, true
	case "false", "no", "none", "f", "n", "0":
		return InlineNone, true
	default:
		return 0, false
	}
}

// Set is the normalized per-field configuration resolved from raw
// directive text. Pointer fields distinguish "not given" from an
// explicit value; explicit flags are the highest-precedence signal in
// resolution.
type Set struct {
	// Alias overrides the method name base for every method kind
	// derived from the field; prefixes still apply per kind.
	Alias string
	Skip  bool

	Setter *bool
	Getter *bool
	Extend *bool
	Take   *bool

	Allow  FeatureSet
	Except FeatureSet

	Visibility       *Visibility
	SetterVisibility *Visibility
	GetterVisibility *Visibility

	Inline       *InlineMode
	SetterInline *InlineMode
	GetterInline *InlineMode

	SetterPrefix *string
	GetterPrefix *string
	IntoPrefix   *string
}
