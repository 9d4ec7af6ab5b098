package resources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/embedfonts/core"
)

// FontFileExt is the file extension of source fonts.
const FontFileExt = ".ttf"

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	directoryResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	case directoryResourceType:
		s = fmt.Sprintf("directory not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, "%s", s)
}

// FontPath returns the conventional path of a source font, without checking
// for its existence.
func FontPath(fontsDir, fontname string) string {
	return filepath.Join(fontsDir, fontname+FontFileExt)
}

// LocateFont finds the source font file for fontname in directory fontsDir.
// It returns an EMISSING error if either the directory or the font file do
// not exist.
func LocateFont(fontsDir, fontname string) (string, error) {
	if fi, err := os.Stat(fontsDir); err != nil || !fi.IsDir() {
		tracer().Debugf("fonts directory %s is not accessible", fontsDir)
		return "", NotFound(fontsDir, directoryResourceType)
	}
	fpath := FontPath(fontsDir, fontname)
	fi, err := os.Stat(fpath)
	if err != nil || fi.IsDir() {
		tracer().Debugf("font %s not found at %s", fontname, fpath)
		return "", NotFound(fpath, fontResourceType)
	}
	tracer().Debugf("located font %s at %s", fontname, fpath)
	return fpath, nil
}
