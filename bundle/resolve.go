package bundle

import (
	"fmt"
	"strings"

	"github.com/npillmayer/embedfonts/core/font"
	"github.com/npillmayer/embedfonts/core/fontconfig"
	"golang.org/x/text/unicode/runenames"
)

// GlyphWarning reports a glyph which has been declared in a config, but is
// not present in the source font.
type GlyphWarning struct {
	Fontname string
	Code     rune
}

func (w GlyphWarning) String() string {
	return fmt.Sprintf("no such glyph in the source font (code=%s)", fontconfig.FormatCode(w.Code))
}

// CharName returns the Unicode name of the missing character, or "" for
// code points without a name.
func (w GlyphWarning) CharName() string {
	name := runenames.Name(w.Code)
	if strings.HasPrefix(name, "<") { // ranges and control characters
		return ""
	}
	return name
}

// Detail is String plus the character name, if any.
func (w GlyphWarning) Detail() string {
	if name := w.CharName(); name != "" {
		return w.String() + " [" + name + "]"
	}
	return w.String()
}

// Resolve checks if glyph g is present in font h. It returns false if the
// font has no glyph for g's code point. g is expected to be validated.
func Resolve(h font.Handle, g fontconfig.GlyphSpec) (fontconfig.GlyphSpec, bool) {
	code, ok, err := g.Code()
	if err != nil || !ok {
		return nil, false
	}
	if !h.HasGlyph(code) {
		return nil, false
	}
	return g, true
}

// ResolveAll resolves a list of glyphs against font h, keeping the order of
// the input. Glyphs not found are skipped and reported as warnings.
func ResolveAll(h font.Handle, fontname string, glyphs []fontconfig.GlyphSpec) (
	[]fontconfig.GlyphSpec, []GlyphWarning) {
	//
	resolved := make([]fontconfig.GlyphSpec, 0, len(glyphs))
	var warnings []GlyphWarning
	for _, g := range glyphs {
		if r, ok := Resolve(h, g); ok {
			resolved = append(resolved, r)
			continue
		}
		code, _, _ := g.Code()
		w := GlyphWarning{Fontname: fontname, Code: code}
		tracer().Infof("%s: %s", fontname, w.Detail())
		warnings = append(warnings, w)
	}
	tracer().Debugf("%s: %d of %d glyphs resolved", fontname, len(resolved), len(glyphs))
	return resolved, warnings
}
