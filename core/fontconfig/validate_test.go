package fontconfig

import (
	"errors"
	"testing"

	"github.com/npillmayer/embedfonts/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyphs(codes ...interface{}) []GlyphSpec {
	g := make([]GlyphSpec, len(codes))
	for i, c := range codes {
		if c == nil {
			g[i] = GlyphSpec{"css": "placeholder"}
			continue
		}
		g[i] = GlyphSpec{"code": c, "css": "icon"}
	}
	return g
}

func TestValidateKeepsCodedGlyphsInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.config")
	defer teardown()
	//
	conf := &FontConfig{
		Path:   "a.yml",
		Font:   FontInfo{Fontname: "Foo"},
		Glyphs: glyphs(0x43, nil, 0x41, 0x42, nil),
	}
	valid, err := Validate(conf)
	require.NoError(t, err)
	require.Len(t, valid, 3)
	for i, want := range []rune{0x43, 0x41, 0x42} {
		code, _, _ := valid[i].Code()
		assert.Equal(t, want, code)
	}
}

func TestValidateDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.config")
	defer teardown()
	//
	conf := &FontConfig{
		Path:   "dups.yml",
		Font:   FontInfo{Fontname: "Foo"},
		Glyphs: glyphs(0x43, 0x41, 0x42, 0x43, 0x41, 0x43),
	}
	_, err := Validate(conf)
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))
	var dup *DuplicateCodesError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, []rune{0x41, 0x43}, dup.Codes)
	assert.Equal(t, []string{
		"Duplicate 'code:' 0x0041",
		"Duplicate 'code:' 0x0043",
	}, dup.Lines())
	assert.Contains(t, dup.UserMessage(), "dups.yml")
}

func TestValidateMissingFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.config")
	defer teardown()
	//
	conf := &FontConfig{Path: "nameless.yml", Glyphs: glyphs(0x41)}
	_, err := Validate(conf)
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))
	assert.Equal(t, `cannot find "font: fontname" in file nameless.yml`, core.UserMessage(err))
}

func TestValidateBadCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.config")
	defer teardown()
	//
	conf := &FontConfig{
		Path:   "bad.yml",
		Font:   FontInfo{Fontname: "Foo"},
		Glyphs: glyphs(0x41, "B"),
	}
	_, err := Validate(conf)
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))
	assert.Contains(t, core.UserMessage(err), "glyph #2")
}

func TestValidateEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.config")
	defer teardown()
	//
	conf := &FontConfig{Path: "empty.yml", Font: FontInfo{Fontname: "Foo"}}
	valid, err := Validate(conf)
	require.NoError(t, err)
	assert.Empty(t, valid)
}
