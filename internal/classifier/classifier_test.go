package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamjamjon/aksr/internal/descriptor"
)

func basic(name string) descriptor.TypeExpr {
	return descriptor.TypeExpr{Kind: descriptor.TypeBasic, Name: name}
}

func named(name string, args ...descriptor.TypeExpr) descriptor.TypeExpr {
	return descriptor.TypeExpr{Kind: descriptor.TypeNamed, Name: name, Args: args}
}

func pointer(elem descriptor.TypeExpr) descriptor.TypeExpr {
	return descriptor.TypeExpr{Kind: descriptor.TypePointer, Args: []descriptor.TypeExpr{elem}}
}

func slice(elem descriptor.TypeExpr) descriptor.TypeExpr {
	return descriptor.TypeExpr{Kind: descriptor.TypeSlice, Args: []descriptor.TypeExpr{elem}}
}

func TestClassify_Categories(t *testing.T) {
	c := New()

	cases := []struct {
		name string
		t    descriptor.TypeExpr
		want Category
	}{
		{"bool", basic("bool"), CategoryScalar},
		{"int64", basic("int64"), CategoryScalar},
		{"float32", basic("float32"), CategoryScalar},
		{"rune", basic("rune"), CategoryScalar},
		{"string", basic("string"), CategoryString},
		{"named string kind", descriptor.TypeExpr{Kind: descriptor.TypeNamed, Name: "Name", Underlying: "string"}, CategoryString},
		{"pointer", pointer(basic("int")), CategoryOption},
		{"generic Option", named("Option", basic("int")), CategoryOption},
		{"slice", slice(basic("string")), CategoryCollection},
		{"map", descriptor.TypeExpr{Kind: descriptor.TypeMap, Args: []descriptor.TypeExpr{basic("string"), basic("int")}}, CategoryCollection},
		{"generic List", named("List", basic("int")), CategoryCollection},
		{"generic Set", named("Set", basic("string")), CategoryCollection},
		{"generic Pointer", named("Pointer", basic("int")), CategorySmartPointer},
		{"generic Weak", named("Weak", named("Node")), CategorySmartPointer},
		{"chan", descriptor.TypeExpr{Kind: descriptor.TypeChan, Args: []descriptor.TypeExpr{basic("int")}}, CategoryReference},
		{"func", descriptor.TypeExpr{Kind: descriptor.TypeFunc}, CategoryReference},
		{"interface", descriptor.TypeExpr{Kind: descriptor.TypeInterface}, CategoryReference},
		{"array", descriptor.TypeExpr{Kind: descriptor.TypeArray, Name: "4", Args: []descriptor.TypeExpr{basic("byte")}}, CategoryOwned},
		{"plain named", named("Duration"), CategoryOwned},
		{"generic unknown name", named("Result", basic("int")), CategoryOwned},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.t))
		})
	}
}

func TestClassify_OptionBeforeInner(t *testing.T) {
	c := New()
	// A pointer to a collection is still an option; the outer shape
	// wins without unwrapping.
	assert.Equal(t, CategoryOption, c.Classify(pointer(slice(basic("int")))))
	assert.Equal(t, CategoryOption, c.Classify(pointer(basic("string"))))
}

func TestClassify_CopyMarkers(t *testing.T) {
	c := New("ID", "example.com/units.Celsius")

	id := named("ID")
	assert.Equal(t, CategoryScalar, c.Classify(id))

	celsius := descriptor.TypeExpr{
		Kind:    descriptor.TypeNamed,
		Name:    "Celsius",
		PkgPath: "example.com/units",
	}
	assert.Equal(t, CategoryScalar, c.Classify(celsius))

	// Copy markers beat the named-string rule.
	idStr := descriptor.TypeExpr{Kind: descriptor.TypeNamed, Name: "ID", Underlying: "string"}
	assert.Equal(t, CategoryScalar, c.Classify(idStr))

	// Unlisted named types are untouched.
	assert.Equal(t, CategoryOwned, c.Classify(named("Other")))
}

func TestClassify_NameCollision(t *testing.T) {
	// A user generic that happens to be called List classifies as a
	// collection. Shallow name matching is the documented contract.
	c := New()
	assert.Equal(t, CategoryCollection, c.Classify(named("List", basic("byte"))))
	// Without type arguments the name carries no wrapper meaning.
	assert.Equal(t, CategoryOwned, c.Classify(named("List")))
}
