package resolver

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/jamjamjon/aksr/internal/classifier"
	"github.com/jamjamjon/aksr/internal/descriptor"
	"github.com/jamjamjon/aksr/internal/directive"
)

const (
	defaultSetterPrefix = "with"
	defaultGetterNth    = "nth"
	defaultIntoPrefix   = "into"
	takePrefix          = "take"
	extendSuffix        = "extend"
)

// Engine resolves per-field directives and type categories into method
// plans. Resolution is a pure function: the same field and directive
// set always yield the same plan.
type Engine struct {
	classifier *classifier.Classifier
}

// New creates an engine using the given type classifier.
func New(c *classifier.Classifier) *Engine {
	return &Engine{classifier: c}
}

// ResolveStruct parses each field's directives and resolves a plan per
// field, in declaration order. The first structural error aborts the
// whole structure.
func (e *Engine) ResolveStruct(st descriptor.Struct) ([]MethodPlan, error) {
	plans := make([]MethodPlan, 0, len(st.Fields))
	for _, f := range st.Fields {
		set, err := directive.Parse(f.RawDirectives)
		if err != nil {
			return nil, fmt.Errorf("struct %s, field %s: %w", st.Name, f.Ident(), err)
		}
		plan, err := e.ResolveField(st.Kind, f, set)
		if err != nil {
			return nil, fmt.Errorf("struct %s: %w", st.Name, err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// ResolveField runs the resolution cascade for one field:
//
//  1. start from the candidate features the category permits,
//  2. intersect with allow when given (whitelist narrows),
//  3. subtract except (blacklist applies last, even after allow),
//  4. apply explicit per-feature flags (highest precedence),
//  5. gate setter and getter on skip,
//  6. decide take independently of the feature set.
//
// Precedence is total: every method kind always gets a decision.
func (e *Engine) ResolveField(
	kind descriptor.StructKind,
	f descriptor.Field,
	set directive.Set,
) (MethodPlan, error) {
	cat := e.classifier.Classify(f.Type)

	candidates, err := applyLists(f, set, cat)
	if err != nil {
		return MethodPlan{}, err
	}

	enabled := map[MethodKind]bool{
		KindSetter: candidates.Has(directive.FeatureSetter),
		KindGetter: candidates.Has(directive.FeatureGetter),
		KindInto:   candidates.Has(directive.FeatureInto),
		KindExtend: candidates.Has(directive.FeatureExtend),
	}

	if set.Setter != nil {
		enabled[KindSetter] = *set.Setter
	}
	if set.Getter != nil {
		enabled[KindGetter] = *set.Getter
	}
	if set.Extend != nil {
		if *set.Extend && cat != classifier.CategoryCollection {
			return MethodPlan{}, capabilityErr(f, directive.FeatureExtend.String(), cat)
		}
		enabled[KindExtend] = *set.Extend
	}

	// skip silences the getter/setter pair only, and does so last: it
	// wins over allow, except and explicit flags alike.
	if skipRequested(set) {
		enabled[KindSetter] = false
		enabled[KindGetter] = false
	}

	takeable := cat == classifier.CategoryOption ||
		cat == classifier.CategoryCollection ||
		cat == classifier.CategorySmartPointer ||
		cat == classifier.CategoryString
	enabled[KindTake] = takeable
	if set.Take != nil {
		if *set.Take && !takeable {
			return MethodPlan{}, capabilityErr(f, takePrefix, cat)
		}
		enabled[KindTake] = *set.Take
	}

	names := resolveNames(kind, f, set)
	plan := MethodPlan{
		Field:      f,
		Category:   cat,
		Directives: set,
		Methods:    make(map[MethodKind]Method, 5),
	}
	for _, k := range Kinds() {
		if !enabled[k] {
			continue
		}
		plan.Methods[k] = Method{
			Name:       names[k],
			Visibility: resolveVisibility(k, set),
			Inline:     resolveInline(k, set),
		}
	}
	return plan, nil
}

// candidateFeatures is the full feature set minus what the category
// makes impossible: extend needs a growable collection, and ownership
// extraction of a copy-cheap scalar is meaningless.
func candidateFeatures(cat classifier.Category) directive.FeatureSet {
	set := directive.NewFeatureSet(directive.FeatureSetter, directive.FeatureGetter)
	if cat != classifier.CategoryScalar {
		set.Add(directive.FeatureInto)
	}
	if cat == classifier.CategoryCollection {
		set.Add(directive.FeatureExtend)
	}
	return set
}

func applyLists(
	f descriptor.Field,
	set directive.Set,
	cat classifier.Category,
) (directive.FeatureSet, error) {
	candidates := candidateFeatures(cat)

	if len(set.Allow) > 0 {
		for _, feature := range set.Allow.Features() {
			if feature == directive.FeatureSkip {
				continue
			}
			if !candidates.Has(feature) {
				return nil, capabilityErr(f, feature.String(), cat)
			}
		}
		kept := lo.Filter(candidates.Features(), func(feature directive.Feature, _ int) bool {
			return set.Allow.Has(feature)
		})
		candidates = directive.NewFeatureSet(kept...)
	}

	for _, feature := range set.Except.Features() {
		delete(candidates, feature)
	}
	return candidates, nil
}

// skipRequested folds the three ways a field can be skipped: the skip
// key, allow(skip), and the except(skip) override that re-enables the
// pair.
func skipRequested(set directive.Set) bool {
	if set.Except.Has(directive.FeatureSkip) {
		return false
	}
	return set.Skip || set.Allow.Has(directive.FeatureSkip)
}

func resolveNames(
	kind descriptor.StructKind,
	f descriptor.Field,
	set directive.Set,
) map[MethodKind]string {
	base := f.Ident()
	if set.Alias != "" {
		base = set.Alias
	}

	// An explicitly empty setter_prefix falls back to the default: the
	// setter must never collide with the bare getter name.
	setterPrefix := defaultSetterPrefix
	if set.SetterPrefix != nil && *set.SetterPrefix != "" {
		setterPrefix = *set.SetterPrefix
	}

	getterPrefix := ""
	if kind == descriptor.KindPositional && set.Alias == "" {
		getterPrefix = defaultGetterNth
	}
	if set.GetterPrefix != nil && *set.GetterPrefix != "" {
		getterPrefix = *set.GetterPrefix
	}

	intoPrefix := defaultIntoPrefix
	if set.IntoPrefix != nil && *set.IntoPrefix != "" {
		intoPrefix = *set.IntoPrefix
	}

	setterName := joinName(setterPrefix, base)
	return map[MethodKind]string{
		KindSetter: setterName,
		KindGetter: joinName(getterPrefix, base),
		KindInto:   joinName(intoPrefix, base),
		KindTake:   joinName(takePrefix, base),
		KindExtend: setterName + "_" + extendSuffix,
	}
}

func joinName(prefix, base string) string {
	if prefix == "" {
		return base
	}
	return prefix + "_" + base
}

// Visibility cascades per-method over shared over public; inline hints
// cascade the same way with no hint as the default. The setter family
// covers extend; into and take follow the shared setting only.
func resolveVisibility(kind MethodKind, set directive.Set) directive.Visibility {
	var specific *directive.Visibility
	switch kind {
	case KindSetter, KindExtend:
		specific = set.SetterVisibility
	case KindGetter:
		specific = set.GetterVisibility
	}
	if specific != nil {
		return *specific
	}
	if set.Visibility != nil {
		return *set.Visibility
	}
	return directive.VisibilityPublic
}

func resolveInline(kind MethodKind, set directive.Set) directive.InlineMode {
	var specific *directive.InlineMode
	switch kind {
	case KindSetter, KindExtend:
		specific = set.SetterInline
	case KindGetter:
		specific = set.GetterInline
	}
	if specific != nil {
		return *specific
	}
	if set.Inline != nil {
		return *set.Inline
	}
	return directive.InlineNone
}

func capabilityErr(f descriptor.Field, feature string, cat classifier.Category) *CapabilityError {
	return &CapabilityError{
		Field:    f.Ident(),
		Feature:  feature,
		Category: cat,
		Type:     f.Type.String(),
	}
}
