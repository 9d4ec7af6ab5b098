package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/embedfonts/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	env, err := NewEnvelope("")
	require.NoError(t, err)
	assert.Equal(t, DefaultNamespace, env.Namespace)
	assert.Equal(t, "fontomas", env.Global())
	assert.True(t, strings.HasPrefix(env.Header(), "/*global fontomas*/\n;(function () {\n"))
	assert.True(t, strings.HasSuffix(env.Header(), "  fontomas.embedded_fonts = ["))
	assert.Equal(t, "\n  ];\n\n}());\n", env.Footer())
	//
	env, err = NewEnvelope("app.fonts.embedded")
	require.NoError(t, err)
	assert.Equal(t, "app", env.Global())
	for _, ns := range []string{"fonts", "a..b", "1x.y", "a.b c", "a.b;alert(1)"} {
		_, err = NewEnvelope(ns)
		assert.True(t, core.IsConfigError(err), "expected %q to be rejected", ns)
	}
}

func TestBundleText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.bundle")
	defer teardown()
	//
	env, _ := NewEnvelope(DefaultNamespace)
	f0, err := Serialize(0, "A", "A", nil)
	require.NoError(t, err)
	f1, err := Serialize(1, "B", "B", nil)
	require.NoError(t, err)
	b := &Bundle{Envelope: env, Fragments: []Fragment{f0, f1}}
	want := env.Header() + f0.Text + "," + f1.Text + env.Footer()
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("bundle mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyBundle(t *testing.T) {
	env, _ := NewEnvelope(DefaultNamespace)
	b := &Bundle{Envelope: env}
	assert.Equal(t, env.Header()+env.Footer(), b.String())
}

func TestWriteFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.bundle")
	defer teardown()
	//
	env, _ := NewEnvelope(DefaultNamespace)
	f0, _ := Serialize(0, "A", "A", nil)
	b := &Bundle{Envelope: env, Fragments: []Fragment{f0}}
	dir := t.TempDir()
	dst := filepath.Join(dir, "embedded_fonts.js")
	require.NoError(t, os.WriteFile(dst, []byte("old content"), 0644))
	require.NoError(t, b.WriteFile(dst))
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, b.String(), string(content))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files should be left behind")
}

func TestWriteFileFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "embedfonts.bundle")
	defer teardown()
	//
	env, _ := NewEnvelope(DefaultNamespace)
	b := &Bundle{Envelope: env}
	err := b.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.js"))
	require.Error(t, err)
	assert.Equal(t, core.EIO, core.Code(err))
	//
	dir := t.TempDir()
	dst := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(dst, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "x"), []byte("x"), 0644))
	err = b.WriteFile(dst)
	require.Error(t, err)
	assert.True(t, core.IsResourceError(err))
	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 1, "temporary file should have been removed")
}
