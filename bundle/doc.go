/*
Package bundle builds the embedded-fonts module of a client application.

A build takes a list of font configurations and produces a single JavaScript
file, which assigns an array of font descriptors to a global namespace entry.
Leaving out the leading lint directive for globals, the output looks like this:

	;(function () {
	  "use strict";

	  fontomas.embedded_fonts = [
	    {
	      id: 0,
	      fontname: "fontelico",
	      fullname: "Fontelico",
	      glyphs: [
	        {"code":59392,"css":"emo-happy"},
	        {"code":59393,"css":"emo-wink"}
	      ]
	    }
	  ];

	}());

A build runs in stages. All configs are loaded and validated first, then for
each config the glyphs are resolved against the source font, then each font is
serialized into a Fragment. Output is written only after all fragments have
been built, so a failing build never touches the destination file.

Glyphs missing from a source font do not fail a build. They are left out of
the font's fragment and reported as GlyphWarning.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bundle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'embedfonts.bundle'
func tracer() tracing.Trace {
	return tracing.Select("embedfonts.bundle")
}
