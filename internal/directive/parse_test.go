package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	set, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Set{}, set)

	set, err = Parse("  ,  , ")
	require.NoError(t, err)
	assert.Equal(t, Set{}, set)
}

func TestParse_AliasAndPrefixes(t *testing.T) {
	set, err := Parse("alias=attributes, setter_prefix=set, getter_prefix=get, into_prefix=to")
	require.NoError(t, err)
	assert.Equal(t, "attributes", set.Alias)
	require.NotNil(t, set.SetterPrefix)
	assert.Equal(t, "set", *set.SetterPrefix)
	require.NotNil(t, set.GetterPrefix)
	assert.Equal(t, "get", *set.GetterPrefix)
	require.NotNil(t, set.IntoPrefix)
	assert.Equal(t, "to", *set.IntoPrefix)
}

func TestParse_DeprecatedAka(t *testing.T) {
	set, err := Parse("aka=width")
	require.NoError(t, err)
	assert.Equal(t, "width", set.Alias)
}

func TestParse_EmptyPrefixAllowed(t *testing.T) {
	set, err := Parse("setter_prefix=")
	require.NoError(t, err)
	require.NotNil(t, set.SetterPrefix)
	assert.Equal(t, "", *set.SetterPrefix)
}

func TestParse_BareKeysMeanTrue(t *testing.T) {
	set, err := Parse("skip")
	require.NoError(t, err)
	assert.True(t, set.Skip)

	set, err = Parse("setter, extend, take")
	require.NoError(t, err)
	require.NotNil(t, set.Setter)
	assert.True(t, *set.Setter)
	require.NotNil(t, set.Extend)
	assert.True(t, *set.Extend)
	require.NotNil(t, set.Take)
	assert.True(t, *set.Take)
}

func TestParse_BoolVocabulary(t *testing.T) {
	for _, value := range []string{"true", "TRUE", "t", "1", "yes", "Y"} {
		set, err := Parse("getter=" + value)
		require.NoError(t, err, value)
		require.NotNil(t, set.Getter, value)
		assert.True(t, *set.Getter, value)
	}
	for _, value := range []string{"false", "f", "0", "no", "N"} {
		set, err := Parse("getter=" + value)
		require.NoError(t, err, value)
		require.NotNil(t, set.Getter, value)
		assert.False(t, *set.Getter, value)
	}

	_, err := Parse("getter=maybe")
	require.Error(t, err)
}

func TestParse_DeprecatedInc(t *testing.T) {
	set, err := Parse("inc=false")
	require.NoError(t, err)
	require.NotNil(t, set.Extend)
	assert.False(t, *set.Extend)
}

func TestParse_FeatureLists(t *testing.T) {
	set, err := Parse("allow=setter|getter, except=extend|into")
	require.NoError(t, err)
	assert.True(t, set.Allow.Has(FeatureSetter))
	assert.True(t, set.Allow.Has(FeatureGetter))
	assert.False(t, set.Allow.Has(FeatureExtend))
	assert.True(t, set.Except.Has(FeatureExtend))
	assert.True(t, set.Except.Has(FeatureInto))

	set, err = Parse("allow=inc")
	require.NoError(t, err)
	assert.True(t, set.Allow.Has(FeatureExtend))

	_, err = Parse("allow=setter|mystery")
	require.Error(t, err)
	_, err = Parse("allow")
	require.Error(t, err)
	_, err = Parse("except=")
	require.Error(t, err)
}

func TestParse_Visibility(t *testing.T) {
	set, err := Parse("visibility=crate, setter_visibility=pub, getter_visibility=pub(super)")
	require.NoError(t, err)
	require.NotNil(t, set.Visibility)
	assert.Equal(t, VisibilityCrate, *set.Visibility)
	require.NotNil(t, set.SetterVisibility)
	assert.Equal(t, VisibilityPublic, *set.SetterVisibility)
	require.NotNil(t, set.GetterVisibility)
	assert.Equal(t, VisibilitySuper, *set.GetterVisibility)

	_, err = Parse("visibility=friend")
	require.Error(t, err)
}

func TestParse_VisibilityInPath(t *testing.T) {
	v, ok := ParseVisibility("pub(in crate::models)")
	require.True(t, ok)
	assert.Equal(t, Visibility("pub(in crate::models)"), v)
	assert.False(t, v.Exported())
}

func TestParse_Inline(t *testing.T) {
	set, err := Parse("inline, setter_inline=always, getter_inline=false")
	require.NoError(t, err)
	require.NotNil(t, set.Inline)
	assert.Equal(t, InlineDefault, *set.Inline)
	require.NotNil(t, set.SetterInline)
	assert.Equal(t, InlineAlways, *set.SetterInline)
	require.NotNil(t, set.GetterInline)
	assert.Equal(t, InlineNone, *set.GetterInline)

	_, err = Parse("inline=loudly")
	require.Error(t, err)
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	set, err := Parse("alias=first, alias=second")
	require.NoError(t, err)
	assert.Equal(t, "second", set.Alias)

	set, err = Parse("setter=false, setter=true")
	require.NoError(t, err)
	require.NotNil(t, set.Setter)
	assert.True(t, *set.Setter)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse("frobnicate=yes")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "frobnicate", perr.Key)
}

func TestParse_AliasRequiresValue(t *testing.T) {
	_, err := Parse("alias")
	require.Error(t, err)
	_, err = Parse("alias=")
	require.Error(t, err)
}

func TestParse_KeysCaseInsensitive(t *testing.T) {
	set, err := Parse("SKIP, Alias=v")
	require.NoError(t, err)
	assert.True(t, set.Skip)
	assert.Equal(t, "v", set.Alias)
}
