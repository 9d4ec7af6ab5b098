package bundle

import (
	"github.com/npillmayer/embedfonts/core"
	"github.com/npillmayer/embedfonts/core/font"
	"github.com/npillmayer/embedfonts/core/fontconfig"
	"github.com/npillmayer/embedfonts/core/locate/resources"
	"github.com/npillmayer/schuko"
)

// Configuration keys read by OptionsFrom.
const (
	KeyNamespace = "embedfonts.namespace"
)

// Options control the output of a build.
type Options struct {
	Namespace string
}

// OptionsFrom reads build options from a configuration. Unset keys get
// default values.
func OptionsFrom(conf schuko.Configuration) Options {
	opts := Options{Namespace: DefaultNamespace}
	if conf == nil {
		return opts
	}
	if ns := conf.GetString(KeyNamespace); ns != "" {
		opts.Namespace = ns
	}
	return opts
}

// Builder runs builds. Loader and Backend are the collaborators for reading
// configs and source fonts.
type Builder struct {
	Loader   fontconfig.Loader
	Backend  font.Backend
	FontsDir string // directory holding the source fonts
	Options  Options
}

// NewBuilder creates a builder reading YAML configs and fonts from fontsDir.
func NewBuilder(fontsDir string, opts Options) *Builder {
	return &Builder{
		Loader:   fontconfig.YAMLLoader{},
		Backend:  font.SFNTBackend{},
		FontsDir: fontsDir,
		Options:  opts,
	}
}

type validConfig struct {
	conf   *fontconfig.FontConfig
	glyphs []fontconfig.GlyphSpec
}

// Build creates a bundle from config files, in the order given.
// It does not write any output. Any config or resource error stops the
// build; glyph warnings are collected in the bundle.
func (b *Builder) Build(configPaths []string) (*Bundle, error) {
	if len(configPaths) == 0 {
		return nil, core.ConfigError("no font configuration given")
	}
	env, err := NewEnvelope(b.Options.Namespace)
	if err != nil {
		return nil, err
	}
	configs, err := b.validateAll(configPaths)
	if err != nil {
		return nil, err
	}
	bundle := &Bundle{Envelope: env, Fragments: make([]Fragment, 0, len(configs))}
	for i, vc := range configs {
		resolved, warnings, err := b.resolve(vc)
		if err != nil {
			return nil, err
		}
		bundle.Warnings = append(bundle.Warnings, warnings...)
		frag, err := Serialize(i, vc.conf.Font.Fontname, vc.conf.FullName(), resolved)
		if err != nil {
			return nil, err
		}
		bundle.Fragments = append(bundle.Fragments, frag)
	}
	tracer().Infof("built %d fonts, %d glyph warnings", len(bundle.Fragments), len(bundle.Warnings))
	return bundle, nil
}

func (b *Builder) validateAll(configPaths []string) ([]validConfig, error) {
	configs := make([]validConfig, 0, len(configPaths))
	for _, path := range configPaths {
		conf, err := b.Loader.Load(path)
		if err != nil {
			return nil, err
		}
		glyphs, err := fontconfig.Validate(conf)
		if err != nil {
			return nil, err
		}
		configs = append(configs, validConfig{conf: conf, glyphs: glyphs})
	}
	return configs, nil
}

// resolve opens the source font of a config, looks up its glyphs and closes
// the font again.
func (b *Builder) resolve(vc validConfig) ([]fontconfig.GlyphSpec, []GlyphWarning, error) {
	fontname := vc.conf.Font.Fontname
	fpath, err := resources.LocateFont(b.FontsDir, fontname)
	if err != nil {
		return nil, nil, err
	}
	h, err := b.Backend.Open(fpath)
	if err != nil {
		return nil, nil, err
	}
	defer h.Close()
	resolved, warnings := ResolveAll(h, fontname, vc.glyphs)
	return resolved, warnings, nil
}
