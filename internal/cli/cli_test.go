package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"--type", "Rect"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rect"}, cfg.Types)
	assert.Equal(t, ".", cfg.Path)
	assert.Equal(t, "aksr_gen.go", cfg.Filename)
	assert.Equal(t, "aksr", cfg.Tag)
	assert.Empty(t, cfg.CopyTypes)
	assert.False(t, cfg.Verbose)
}

func TestParseArgs_AllFlags(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"-t", "Rect, Palette",
		"--path", "./models",
		"-o", "accessors_gen.go",
		"--tag", "builder",
		"--copy-types", "ID,units.Celsius",
		"--verbose",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rect", "Palette"}, cfg.Types)
	assert.Equal(t, "./models", cfg.Path)
	assert.Equal(t, "accessors_gen.go", cfg.Filename)
	assert.Equal(t, "builder", cfg.Tag)
	assert.Equal(t, []string{"ID", "units.Celsius"}, cfg.CopyTypes)
	assert.True(t, cfg.Verbose)
}

func TestParseArgs_TypeRequired(t *testing.T) {
	_, err := ParseArgs(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--type")

	_, err = ParseArgs([]string{"--type", " , "})
	require.Error(t, err)
}

func TestParseArgs_EmptyOutputRejected(t *testing.T) {
	_, err := ParseArgs([]string{"--type", "Rect", "--output", " "})
	require.Error(t, err)
}

func TestParseArgs_VersionShortCircuits(t *testing.T) {
	cfg, err := ParseArgs([]string{"--version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--frobnicate"})
	require.Error(t, err)
}
