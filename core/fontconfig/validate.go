package fontconfig

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/embedfonts/core"
)

// Validate checks a font configuration and returns the glyphs which declare
// a code point, in input order.
//
// A config without a font name, or with a code point declared more than once,
// is invalid. Duplicates are reported all at once, as a *DuplicateCodesError.
func Validate(conf *FontConfig) ([]GlyphSpec, error) {
	if conf.Font.Fontname == "" {
		return nil, core.ConfigError(`cannot find "font: fontname" in file %s`, conf.Path)
	}
	glyphs := make([]GlyphSpec, 0, len(conf.Glyphs))
	counts := treemap.NewWithIntComparator()
	for i, g := range conf.Glyphs {
		code, ok, err := g.Code()
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "glyph #%d in file %s: %v",
				i+1, conf.Path, err)
		}
		if !ok {
			tracer().Debugf("%s: dropping glyph #%d without code", conf.Path, i+1)
			continue
		}
		glyphs = append(glyphs, g)
		n := 0
		if c, found := counts.Get(int(code)); found {
			n = c.(int)
		}
		counts.Put(int(code), n+1)
	}
	var dups []rune
	it := counts.Iterator()
	for it.Next() { // iterates in ascending order of code points
		if it.Value().(int) > 1 {
			dups = append(dups, rune(it.Key().(int)))
		}
	}
	if len(dups) > 0 {
		err := &DuplicateCodesError{Path: conf.Path, Codes: dups}
		tracer().Debugf("error in file %s: glyph codes aren't unique", conf.Path)
		for _, line := range err.Lines() {
			tracer().Debugf("%s", line)
		}
		return nil, err
	}
	return glyphs, nil
}

// DuplicateCodesError is returned by Validate if glyph code points are not
// unique within a config. Codes are sorted in ascending order.
type DuplicateCodesError struct {
	Path  string
	Codes []rune
}

func (e *DuplicateCodesError) Error() string {
	hex := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		hex[i] = FormatCode(c)
	}
	return fmt.Sprintf("[%d] %s: %s", e.ErrorCode(), e.UserMessage(), strings.Join(hex, ", "))
}

// ErrorCode is core.EINVALID.
func (e *DuplicateCodesError) ErrorCode() int {
	return core.EINVALID
}

func (e *DuplicateCodesError) UserMessage() string {
	return fmt.Sprintf("glyph codes aren't unique in file %s", e.Path)
}

// Lines returns one diagnostic line per duplicate code point.
func (e *DuplicateCodesError) Lines() []string {
	lines := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		lines[i] = fmt.Sprintf("Duplicate 'code:' %s", FormatCode(c))
	}
	return lines
}

var _ core.AppError = &DuplicateCodesError{}
