package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/npillmayer/embedfonts/core"
	"github.com/npillmayer/embedfonts/core/fontconfig"
)

// Fragment is the serialized form of a single font.
type Fragment struct {
	ID       int // position of the font's config in the input
	Fontname string
	Fullname string
	Glyphs   []fontconfig.GlyphSpec // resolved glyphs, in input order
	Text     string                 // object literal for the font
}

const glyphSep = ",\n        "

// Serialize creates the fragment of a font. Glyphs are encoded as JSON
// objects, with keys in sorted order. A glyph field which has no JSON
// representation results in a config error.
func Serialize(id int, fontname, fullname string, glyphs []fontconfig.GlyphSpec) (Fragment, error) {
	frag := Fragment{ID: id, Fontname: fontname, Fullname: fullname, Glyphs: glyphs}
	encoded := make([]string, len(glyphs))
	for i, g := range glyphs {
		lit, err := encodeGlyph(g)
		if err != nil {
			code, _, _ := g.Code()
			return frag, core.WrapError(err, core.EINVALID,
				"font %s: cannot encode glyph %s: %v", fontname, fontconfig.FormatCode(code), err)
		}
		encoded[i] = lit
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n    {\n      id: %d,\n", id)
	fmt.Fprintf(&sb, "      fontname: %s,\n", quote(fontname))
	fmt.Fprintf(&sb, "      fullname: %s,\n", quote(fullname))
	fmt.Fprintf(&sb, "      glyphs: [\n        %s\n      ]\n    }", strings.Join(encoded, glyphSep))
	frag.Text = sb.String()
	tracer().Debugf("serialized font #%d %s with %d glyphs", id, fontname, len(glyphs))
	return frag, nil
}

// encodeGlyph encodes a glyph as a single-line JSON object. Characters
// significant to HTML are left as they are, so that string fields appear in
// the output as declared.
func encodeGlyph(g fontconfig.GlyphSpec) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(g); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// quote returns s as a string literal. JSON string literals are valid
// JavaScript, including line and paragraph separators, which encoding/json
// escapes.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
