package adapters

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"projroot/internal/ports"
)

// SourceLocationAdapter reports the directory holding this source file as
// recorded by the compiler.
type SourceLocationAdapter struct{}

func NewSourceLocationAdapter() SourceLocationAdapter {
	return SourceLocationAdapter{}
}

func (a SourceLocationAdapter) Location() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok || file == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unable to determine source location")
	}
	return filepath.Dir(file), nil
}

// StaticLocationAdapter reports a fixed, configured location. Relative
// locations are rejected since the derived root is always absolute.
type StaticLocationAdapter struct {
	Path string
}

func NewStaticLocationAdapter(path string) StaticLocationAdapter {
	return StaticLocationAdapter{Path: path}
}

func (a StaticLocationAdapter) Location() (string, error) {
	path := strings.TrimSpace(a.Path)
	if path == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("location is empty")
	}
	if !filepath.IsAbs(path) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("location must be absolute: " + path)
	}
	return path, nil
}

var (
	_ ports.LocationPort = SourceLocationAdapter{}
	_ ports.LocationPort = StaticLocationAdapter{}
)
