package directive

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ParseError is a structural directive error: unknown key, wrong value
// shape, or an unknown feature name in a list.
type ParseError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("directive %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("directive %q = %q: %s", e.Key, e.Value, e.Reason)
}

// Parse turns one field's raw directive text into a Set.
//
// The text is a comma-separated list of entries, each either a bare key
// ("skip") or key=value ("alias=attributes"). List values (allow,
// except) separate members with "|". Parsing is order-independent
// except that a duplicated key takes the last-seen value; that policy
// is deliberate, not ambiguity.
func Parse(raw string) (Set, error) {
	set := Set{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return set, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, hasValue := strings.Cut(entry, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if err := apply(&set, key, value, hasValue); err != nil {
			return Set{}, err
		}
	}
	return set, nil
}

func apply(set *Set, key, value string, hasValue bool) error {
	switch key {
	case "alias", "aka":
		if !hasValue || value == "" {
			return &ParseError{Key: key, Reason: "expected an identifier value"}
		}
		set.Alias = value
	case "skip":
		b, err := boolValue(key, value, hasValue)
		if err != nil {
			return err
		}
		set.Skip = b
	case "setter":
		return boolFlag(&set.Setter, key, value, hasValue)
	case "getter":
		return boolFlag(&set.Getter, key, value, hasValue)
	case "extend", "inc":
		return boolFlag(&set.Extend, key, value, hasValue)
	case "take":
		return boolFlag(&set.Take, key, value, hasValue)
	case "allow":
		features, err := featureList(key, value, hasValue)
		if err != nil {
			return err
		}
		set.Allow = features
	case "except":
		features, err := featureList(key, value, hasValue)
		if err != nil {
			return err
		}
		set.Except = features
	case "visibility":
		return visibilityValue(&set.Visibility, key, value, hasValue)
	case "setter_visibility":
		return visibilityValue(&set.SetterVisibility, key, value, hasValue)
	case "getter_visibility":
		return visibilityValue(&set.GetterVisibility, key, value, hasValue)
	case "inline":
		return inlineValue(&set.Inline, key, value, hasValue)
	case "setter_inline":
		return inlineValue(&set.SetterInline, key, value, hasValue)
	case "getter_inline":
		return inlineValue(&set.GetterInline, key, value, hasValue)
	case "setter_prefix":
		return prefixValue(&set.SetterPrefix, key, value, hasValue)
	case "getter_prefix":
		return prefixValue(&set.GetterPrefix, key, value, hasValue)
	case "into_prefix":
		return prefixValue(&set.IntoPrefix, key, value, hasValue)
	default:
		return &ParseError{Key: key, Reason: "unknown directive key"}
	}
	return nil
}

func boolFlag(dst **bool, key, value string, hasValue bool) error {
	b, err := boolValue(key, value, hasValue)
	if err != nil {
		return err
	}
	*dst = &b
	return nil
}

// boolValue accepts the lenient vocabulary: true/false, 1/0, t/f,
// yes/no, y/n, case-insensitive. A bare key means true.
func boolValue(key, value string, hasValue bool) (bool, error) {
	if !hasValue {
		return true, nil
	}
	switch strings.ToLower(value) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		return false, &ParseError{Key: key, Value: value, Reason: "expected a boolean value"}
	}
	return b, nil
}

func featureList(key, value string, hasValue bool) (FeatureSet, error) {
	if !hasValue || value == "" {
		return nil, &ParseError{Key: key, Reason: "expected a |-separated feature list"}
	}
	set := make(FeatureSet)
	for _, part := range strings.Split(value, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, ok := ParseFeature(part)
		if !ok {
			return nil, &ParseError{Key: key, Value: part, Reason: "unknown feature name"}
		}
		set.Add(f)
	}
	if len(set) == 0 {
		return nil, &ParseError{Key: key, Reason: "expected a |-separated feature list"}
	}
	return set, nil
}

func visibilityValue(dst **Visibility, key, value string, hasValue bool) error {
	if !hasValue || value == "" {
		return &ParseError{Key: key, Reason: "expected a visibility value"}
	}
	v, ok := ParseVisibility(value)
	if !ok {
		return &ParseError{Key: key, Value: value, Reason: "unknown visibility"}
	}
	*dst = &v
	return nil
}

func inlineValue(dst **InlineMode, key, value string, hasValue bool) error {
	mode := InlineDefault
	if hasValue {
		m, ok := ParseInline(value)
		if !ok {
			return &ParseError{Key: key, Value: value, Reason: "expected always, true or false"}
		}
		mode = m
	}
	*dst = &mode
	return nil
}

func prefixValue(dst **string, key, value string, hasValue bool) error {
	if !hasValue {
		return &ParseError{Key: key, Reason: "expected an identifier fragment"}
	}
	v := value
	*dst = &v
	return nil
}
