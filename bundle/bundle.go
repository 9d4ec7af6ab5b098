package bundle

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/npillmayer/embedfonts/core"
)

// DefaultNamespace is the namespace entry the font array is assigned to.
const DefaultNamespace = "fontomas.embedded_fonts"

// Envelope is the fixed frame around the font array.
type Envelope struct {
	Namespace string // dotted path of the array, e.g. "fontomas.embedded_fonts"
}

var namespacePattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)+$`)

// NewEnvelope creates an envelope for a namespace. The namespace has to be a
// property path below a global object, i.e. contain at least one dot.
func NewEnvelope(namespace string) (Envelope, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if !namespacePattern.MatchString(namespace) {
		return Envelope{}, core.ConfigError("invalid namespace %q, expected global.property", namespace)
	}
	return Envelope{Namespace: namespace}, nil
}

// Global returns the global object of the namespace.
func (env Envelope) Global() string {
	return strings.SplitN(env.Namespace, ".", 2)[0]
}

// Header opens the wrapper function and the font array.
func (env Envelope) Header() string {
	return "/*global " + env.Global() + "*/\n" +
		";(function () {\n" +
		"  \"use strict\";\n\n\n" +
		"  " + env.Namespace + " = ["
}

// Footer closes the font array and the wrapper function.
func (env Envelope) Footer() string {
	return "\n  ];\n\n}());\n"
}

// Bundle is the result of a build: an ordered list of font fragments in an
// envelope, plus all glyph warnings collected on the way.
type Bundle struct {
	Envelope  Envelope
	Fragments []Fragment
	Warnings  []GlyphWarning
}

func (b *Bundle) String() string {
	var sb strings.Builder
	b.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the complete bundle document to w.
func (b *Bundle) WriteTo(w io.Writer) (int64, error) {
	texts := make([]string, len(b.Fragments))
	for i, f := range b.Fragments {
		texts[i] = f.Text
	}
	doc := b.Envelope.Header() + strings.Join(texts, ",") + b.Envelope.Footer()
	n, err := io.WriteString(w, doc)
	return int64(n), err
}

// WriteFile writes the bundle to path. The bundle is first written to a
// temporary file in the same directory, which then replaces path. If writing
// fails, path is left untouched.
func (b *Bundle) WriteFile(path string) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0644))
	if err != nil {
		return core.ResourceError(err, core.EIO, "Cannot write to file %s: %v", path, err)
	}
	defer pending.Cleanup()
	if _, err = b.WriteTo(pending); err == nil {
		err = pending.CloseAtomicallyReplace()
	}
	if err != nil {
		tracer().Debugf("writing %s failed: %v", path, err)
		return core.ResourceError(err, core.EIO, "Cannot write to file %s: %v", path, err)
	}
	tracer().Infof("wrote %d fonts to %s", len(b.Fragments), path)
	return nil
}
