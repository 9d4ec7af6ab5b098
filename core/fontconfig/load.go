package fontconfig

import (
	"errors"
	"os"

	"github.com/npillmayer/embedfonts/core"
	"gopkg.in/yaml.v3"
)

// Loader loads a font configuration from a file.
type Loader interface {
	Load(path string) (*FontConfig, error)
}

// YAMLLoader loads font configurations from YAML files.
type YAMLLoader struct{}

var _ Loader = YAMLLoader{}

// Load reads and parses the config file at path.
// Errors are either resource errors, if the file cannot be read, or config
// errors, if its content is not well-formed YAML.
func (YAMLLoader) Load(path string) (*FontConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := core.EIO
		if errors.Is(err, os.ErrNotExist) {
			code = core.EMISSING
		}
		return nil, core.ResourceError(err, code, "Cannot open %s: %v", path, reason(err))
	}
	return Parse(path, data)
}

// Parse decodes YAML data into a font configuration. path is used for
// error messages only.
func Parse(path string, data []byte) (*FontConfig, error) {
	conf := &FontConfig{}
	if err := yaml.Unmarshal(data, conf); err != nil {
		tracer().Debugf("YAML parser error in file %s: %v", path, err)
		return nil, core.WrapError(err, core.EINVALID, "YAML parser error in file %s: %v", path, err)
	}
	conf.Path = path
	tracer().Debugf("loaded config %s: font %q with %d glyph entries",
		path, conf.Font.Fontname, len(conf.Glyphs))
	return conf, nil
}

// reason strips the path from an *os.PathError, which is already part of
// our messages.
func reason(err error) error {
	var perr *os.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}
