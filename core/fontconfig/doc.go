/*
Package fontconfig reads and validates font subset descriptions.

A font subset description is a YAML file naming a source font and listing the
glyphs to embed from it, keyed by Unicode code point:

	font:
	  fontname: fontelico
	  fullname: Fontelico
	glyphs:
	  - code: 0xe800
	    css: emo-happy
	    search: [smile, happy]
	  - code: 0xe801
	    css: emo-wink

Glyph entries are opaque to this package apart from their `code`. All other
fields are kept as decoded and are passed on to the output unchanged.
Entries without a code are placeholders and are dropped without notice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontconfig

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'embedfonts.config'.
func tracer() tracing.Trace {
	return tracing.Select("embedfonts.config")
}
