package core

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := ConfigError("cannot find %q", "font: fontname")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, `cannot find "font: fontname"`, UserMessage(err))
	assert.True(t, IsConfigError(err))
	assert.False(t, IsResourceError(err))
}

func TestResourceErrorWraps(t *testing.T) {
	err := ResourceError(os.ErrNotExist, EMISSING, "Cannot open %s", "x.yml")
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, IsResourceError(err))
	assert.False(t, IsConfigError(err))
	wrapped := fmt.Errorf("building: %w", err)
	assert.Equal(t, EMISSING, Code(wrapped))
	assert.Equal(t, "Cannot open x.yml", UserMessage(wrapped))
}

func TestWrapNilError(t *testing.T) {
	err := WrapError(nil, EIO, "write failed")
	assert.Equal(t, EIO, Code(err))
	assert.Contains(t, err.Error(), "i/o error")
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("x")))
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, Error(EMISSING, "font not found: %s", "X.ttf"))
	assert.Contains(t, buf.String(), "[122] font not found: X.ttf")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("X.ttf")))
	buf.Reset()
	ReportError(&buf, nil)
	assert.Equal(t, 0, buf.Len())
}
