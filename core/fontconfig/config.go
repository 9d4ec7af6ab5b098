package fontconfig

import (
	"fmt"
	"math"
	"unicode"
)

// FontConfig is the description of a single font subset, as authored in a
// configuration file.
type FontConfig struct {
	Path   string      `yaml:"-"` // file the config has been loaded from
	Font   FontInfo    `yaml:"font"`
	Glyphs []GlyphSpec `yaml:"glyphs"`
}

// FontInfo holds the font-level attributes of a config. Fontname identifies
// the source font file and is required.
type FontInfo struct {
	Fontname string `yaml:"fontname"`
	Fullname string `yaml:"fullname"`
}

// FullName returns the font's full name, defaulting to the font name.
func (conf *FontConfig) FullName() string {
	if conf.Font.Fullname == "" {
		return conf.Font.Fontname
	}
	return conf.Font.Fullname
}

// GlyphSpec is a single glyph declaration. Apart from "code", fields are
// not interpreted.
type GlyphSpec map[string]interface{}

// CodeKey is the name of the field holding a glyph's code point.
const CodeKey = "code"

// Code returns the code point declared for a glyph. ok is false if the glyph
// does not declare a code; as with the fontello tools, a code of 0 counts as
// not declared. A code which is not an integer in the Unicode range results
// in an error.
func (g GlyphSpec) Code() (code rune, ok bool, err error) {
	v, found := g[CodeKey]
	if !found || v == nil {
		return 0, false, nil
	}
	var n int64
	switch c := v.(type) {
	case int:
		n = int64(c)
	case int64:
		n = c
	case uint64:
		if c > math.MaxInt32 {
			return 0, false, fmt.Errorf("code %d out of range", c)
		}
		n = int64(c)
	case float64:
		if c != math.Trunc(c) {
			return 0, false, fmt.Errorf("code %v is not an integer", c)
		}
		n = int64(c)
	default:
		return 0, false, fmt.Errorf("code %v is not an integer", v)
	}
	if n == 0 {
		return 0, false, nil
	}
	if n < 0 || n > unicode.MaxRune {
		return 0, false, fmt.Errorf("code %d is not a Unicode code point", n)
	}
	return rune(n), true, nil
}

// FormatCode renders a code point the way diagnostics show it, i.e. as
// hex number with at least 4 digits.
func FormatCode(code rune) string {
	return fmt.Sprintf("0x%04x", code)
}
