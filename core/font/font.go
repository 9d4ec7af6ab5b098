/*
Package font is the boundary to source font files.

Source fonts are only queried for the presence of glyphs, i.e. whether a font's
character map has an entry for a given Unicode code point. Everything else
about a font (outlines, metrics, layout tables) is of no concern here.

Fonts are opened through a Backend, which hands out a Handle per font file.
Handles are meant to be short-lived: open, query, close.

The default backend uses golang.org/x/image/font/sfnt. When parsing a font,
sfnt selects the most complete Unicode character map the font offers (a
format 12 sub-table when present, otherwise a BMP one), so every code point
up to U+10FFFF is addressable. Fonts without any Unicode character map are
rejected when opened.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"errors"
	"os"

	"github.com/npillmayer/embedfonts/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'embedfonts.fonts'
func tracer() tracing.Trace {
	return tracing.Select("embedfonts.fonts")
}

// Handle is an opened source font.
type Handle interface {
	HasGlyph(code rune) bool
	Close() error
}

// Backend opens source font files.
type Backend interface {
	Open(path string) (Handle, error)
}

// ScalableFont is a font loaded from a TrueType or OpenType file.
type ScalableFont struct {
	Fontname string      // full name from the font's name table, if any
	Filepath string      // file path
	Binary   []byte      // raw data
	SFNT     *sfnt.Font  // the font's container
	buf      sfnt.Buffer // scratch space for lookups; makes a font not safe for concurrent use
}

var _ Handle = &ScalableFont{}

// LoadOpenTypeFont reads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		code := core.EIO
		if errors.Is(err, os.ErrNotExist) {
			code = core.EMISSING
		}
		return nil, core.ResourceError(err, code, "Cannot open font %s: %v", fontfile, err)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, core.ResourceError(err, core.EIO, "Cannot parse font %s: %v", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font data. Parsing includes the selection of the
// font's Unicode character map.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(&f.buf, sfnt.NameIDFull)
	return
}

// HasGlyph is true if the font maps code to a glyph other than .notdef.
func (sf *ScalableFont) HasGlyph(code rune) bool {
	if sf.SFNT == nil {
		return false
	}
	gid, err := sf.SFNT.GlyphIndex(&sf.buf, code)
	if err != nil {
		tracer().Debugf("lookup of %#U in %s failed: %v", code, sf.Filepath, err)
		return false
	}
	return gid != 0
}

// NumGlyphs returns the number of glyphs in the font.
func (sf *ScalableFont) NumGlyphs() int {
	if sf.SFNT == nil {
		return 0
	}
	return sf.SFNT.NumGlyphs()
}

// Close releases the font data. Further lookups will not find any glyph.
func (sf *ScalableFont) Close() error {
	sf.SFNT = nil
	sf.Binary = nil
	return nil
}

// --- Backend ---------------------------------------------------------------

// SFNTBackend opens fonts with package golang.org/x/image/font/sfnt.
type SFNTBackend struct{}

var _ Backend = SFNTBackend{}

// Open loads the font file at path.
func (SFNTBackend) Open(path string) (Handle, error) {
	f, err := LoadOpenTypeFont(path)
	if err != nil {
		tracer().Debugf("%s", core.UserMessage(err))
		return nil, err
	}
	tracer().Infof("opened font %s (%q, %d glyphs)", path, f.Fontname, f.NumGlyphs())
	return f, nil
}
