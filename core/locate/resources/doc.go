/*
Package resources locates the files a build reads: source fonts.

Source fonts are found by convention: a font named "fontelico" is expected at
<fonts_dir>/fontelico.ttf. There is no fallback to system fonts, as a build
has to produce the same output on every machine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'embedfonts.resources'.
func tracer() tracing.Trace {
	return tracing.Select("embedfonts.resources")
}
