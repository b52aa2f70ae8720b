package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamjamjon/aksr/internal/descriptor"
)

const (
	rectPkg  = "github.com/jamjamjon/aksr/testdata/rect"
	colorPkg = "github.com/jamjamjon/aksr/testdata/color"
)

func TestParse_Basic(t *testing.T) {
	targets, err := New().Parse(rectPkg, []string{"Rect"}, "aksr")
	require.NoError(t, err)
	require.Len(t, targets, 1)

	target := targets[0]
	assert.Equal(t, "rect", target.PkgName)
	assert.Equal(t, rectPkg, target.PkgPath)

	st := target.Struct
	assert.Equal(t, descriptor.KindNamed, st.Kind)
	assert.Equal(t, "Rect", st.Name)
	require.Len(t, st.Fields, 6)

	w := st.Fields[0]
	assert.Equal(t, "w", w.Name)
	assert.Equal(t, 0, w.Index)
	assert.Equal(t, descriptor.TypeBasic, w.Type.Kind)
	assert.Equal(t, "float64", w.Type.Name)
	assert.Equal(t, "alias=width", w.RawDirectives)

	name := st.Fields[2]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "", name.RawDirectives)

	scale := st.Fields[3]
	assert.Equal(t, descriptor.TypePointer, scale.Type.Kind)
	require.NotNil(t, scale.Type.Elem())
	assert.Equal(t, "float64", scale.Type.Elem().Name)
	assert.Equal(t, "*float64", scale.Type.String())

	tags := st.Fields[4]
	assert.Equal(t, descriptor.TypeSlice, tags.Type.Kind)
	assert.Equal(t, "[]string", tags.Type.String())

	attrs := st.Fields[5]
	assert.Equal(t, descriptor.TypeMap, attrs.Type.Kind)
	assert.Equal(t, "map[string]string", attrs.Type.String())
	assert.Equal(t, "except=extend", attrs.RawDirectives)
}

func TestParse_EmbeddedSkippedAndNamedKinds(t *testing.T) {
	targets, err := New().Parse(colorPkg, []string{"Palette"}, "aksr")
	require.NoError(t, err)
	require.Len(t, targets, 1)

	st := targets[0].Struct
	// Base is embedded and dropped; the remaining fields reindex from
	// zero.
	require.Len(t, st.Fields, 5)
	assert.Equal(t, "primary", st.Fields[0].Name)
	assert.Equal(t, 0, st.Fields[0].Index)

	primary := st.Fields[0]
	assert.Equal(t, descriptor.TypeNamed, primary.Type.Kind)
	assert.Equal(t, "Name", primary.Type.Name)
	assert.Equal(t, "string", primary.Type.Underlying)
	assert.Equal(t, colorPkg, primary.Type.PkgPath)
	assert.Equal(t, "Name", primary.Type.String(), "own-package types render unqualified")

	swatches := st.Fields[1]
	assert.Equal(t, "[]Name", swatches.Type.String())
	require.NotNil(t, swatches.Type.Elem())
	assert.Equal(t, "string", swatches.Type.Elem().Underlying)

	refresh := st.Fields[3]
	assert.Equal(t, descriptor.TypeChan, refresh.Type.Kind)
	assert.Equal(t, "skip", refresh.RawDirectives)

	exported := st.Fields[4]
	assert.Equal(t, "Exported", exported.Name)
}

func TestParse_MultipleTypes(t *testing.T) {
	targets, err := New().Parse(colorPkg, []string{"Palette", "Base"}, "aksr")
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "Palette", targets[0].Struct.Name)
	assert.Equal(t, "Base", targets[1].Struct.Name)
}

func TestParse_TypeNotFound(t *testing.T) {
	_, err := New().Parse(rectPkg, []string{"Circle"}, "aksr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestParse_NotAStruct(t *testing.T) {
	_, err := New().Parse(colorPkg, []string{"Name"}, "aksr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a struct")
}

func TestParse_BadPackage(t *testing.T) {
	_, err := New().Parse("github.com/jamjamjon/aksr/testdata/nosuch", []string{"X"}, "aksr")
	require.Error(t, err)
}
