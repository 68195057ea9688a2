package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranamom/cpuid-dump/cpuid"
	"github.com/Ranamom/cpuid-dump/dump"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"0", 0x0, true},
		{"7", 0x7, true},
		{"0x1f", 0x1F, true},
		{"0X8000_0008", 0x8000_0008, true},
		{"1_000", 1000, true},
		{"0xFFFFFFFF", 0xFFFF_FFFF, true},
		{"0x1_0000_0000", 0, false},
		{"leaf", 0, false},
		{"", 0, false},
	}

	for _, tt := range cases {
		got, err := parseNumber(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func resolve(t *testing.T, args ...string) (dump.Options, error) {
	t.Helper()
	cmd := NewCLI()
	require.NoError(t, cmd.ParseFlags(args))
	return resolveOptions(cmd)
}

func TestResolveOptionsDefaults(t *testing.T) {
	opts, err := resolve(t)
	require.NoError(t, err)
	assert.Equal(t, dump.Options{
		Style:    dump.StyleParsed,
		SkipZero: true,
		Diff:     true,
	}, opts)
}

func TestResolveOptionsStyles(t *testing.T) {
	opts, err := resolve(t, "--raw")
	require.NoError(t, err)
	assert.Equal(t, dump.StyleRaw, opts.Style)

	opts, err = resolve(t, "--bin")
	require.NoError(t, err)
	assert.Equal(t, dump.StyleBinary, opts.Style)

	// Compat wins over the other style flags and forces a complete dump.
	opts, err = resolve(t, "--compat", "--raw", "--no-diff")
	require.NoError(t, err)
	assert.Equal(t, dump.Options{
		Style: dump.StyleCompat,
		All:   true,
	}, opts)
}

func TestResolveOptionsFull(t *testing.T) {
	opts, err := resolve(t, "--full")
	require.NoError(t, err)
	assert.False(t, opts.All)
	assert.False(t, opts.SkipZero)
	assert.False(t, opts.Diff)

	opts, err = resolve(t, "--full", "--all")
	require.NoError(t, err)
	assert.True(t, opts.All)
}

func TestResolveOptionsLeaf(t *testing.T) {
	opts, err := resolve(t, "--leaf", "0x8000_001D", "--subleaf", "0x2")
	require.NoError(t, err)
	require.NotNil(t, opts.Only)
	assert.Equal(t, cpuid.Query{Leaf: 0x8000_001D, Sub: 0x2}, *opts.Only)

	// Sub-leaf defaults to zero.
	opts, err = resolve(t, "--leaf", "0xB")
	require.NoError(t, err)
	require.NotNil(t, opts.Only)
	assert.Equal(t, cpuid.Query{Leaf: 0xB}, *opts.Only)

	// A sub-leaf without a leaf is ignored with a warning.
	opts, err = resolve(t, "--subleaf", "0x1")
	require.NoError(t, err)
	assert.Nil(t, opts.Only)

	_, err = resolve(t, "--leaf", "pineapple")
	assert.ErrorContains(t, err, "bad --leaf")
}

func TestSavePath(t *testing.T) {
	// Explicit file paths pass through.
	got, err := savePath("/tmp/dump.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dump.txt", got)

	// Directories get the generated file name appended.
	dir := t.TempDir()
	got, err = savePath(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(got))
	assert.Regexp(t, `_[0-9A-F]{8}\.txt$`, got)

	// The bare flag generates the name outright.
	got, err = savePath(saveAuto)
	require.NoError(t, err)
	assert.Regexp(t, `_[0-9A-F]{8}\.txt$`, got)
	assert.NotContains(t, got, " ")
}
