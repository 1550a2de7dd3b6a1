// Package projectroot resolves paths against a project root directory.
//
// The root is either injected explicitly with New, derived from a location
// with Locate, or derived by RootDir and FilePath from the directory holding
// this package's source file. That directory is looked up once per process.
package projectroot

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"projroot/internal/core"
	"projroot/internal/types"
)

// DefaultMarker is the directory name that marks the project root.
const DefaultMarker = types.DefaultMarker

// Root is an absolute project root directory.
type Root struct {
	dir string
}

// New returns a Root for an explicitly configured directory.
func New(dir string) (Root, error) {
	dir = strings.TrimSpace(dir)
	if !filepath.IsAbs(dir) {
		return Root{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project root must be absolute: " + dir)
	}
	return Root{dir: filepath.Clean(dir)}, nil
}

// Locate derives a Root from the absolute location, ending at the first
// segment equal to marker.
func Locate(location string, marker string) (Root, error) {
	if strings.TrimSpace(marker) == "" {
		return Root{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("marker is required")
	}
	if strings.ContainsAny(marker, `/\`) || marker == "." || marker == ".." {
		return Root{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("marker must be a single path segment: " + marker)
	}
	if !filepath.IsAbs(location) {
		return Root{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("location must be absolute: " + location)
	}
	dir, err := core.NewRootResolver(marker).ProjectDir(context.Background(), location)
	if err != nil {
		return Root{}, err
	}
	return Root{dir: dir}, nil
}

func (r Root) Dir() string {
	return r.dir
}

// Path joins relative onto the root. Absolute paths are rejected.
func (r Root) Path(relative string) (string, error) {
	if r.dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("project root is not set")
	}
	return core.NewRootResolver(DefaultMarker).Path(context.Background(), r.dir, relative)
}

// IsMarkerNotFound reports whether err means the marker was absent from the
// searched location.
func IsMarkerNotFound(err error) bool {
	return core.IsMarkerNotFound(err)
}

// installation caches the caller location and, when the marker is present,
// the derived root. A missing marker is rebuilt into a new error on every
// call so callers never share a mutable error value.
type installation struct {
	once     sync.Once
	locate   func() (string, bool)
	location string
	ok       bool
	root     Root
}

func newInstallation(locate func() (string, bool)) *installation {
	return &installation{locate: locate}
}

func (i *installation) resolve() (Root, error) {
	i.once.Do(func() {
		i.location, i.ok = i.locate()
		if !i.ok {
			return
		}
		if root, err := Locate(i.location, DefaultMarker); err == nil {
			i.root = root
		}
	})
	if !i.ok {
		return Root{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unable to determine source location")
	}
	if i.root.dir != "" {
		return i.root, nil
	}
	return Locate(i.location, DefaultMarker)
}

func sourceLocation() (string, bool) {
	_, file, _, ok := runtime.Caller(0)
	if !ok || file == "" {
		return "", false
	}
	return filepath.Dir(file), true
}

var installed = newInstallation(sourceLocation)

// RootDir returns the project root containing this package's source
// directory. A missing marker is a configuration error and is returned on
// every call.
func RootDir() (string, error) {
	root, err := installed.resolve()
	if err != nil {
		return "", err
	}
	return root.Dir(), nil
}

// FilePath joins relative onto RootDir.
func FilePath(relative string) (string, error) {
	root, err := installed.resolve()
	if err != nil {
		return "", err
	}
	return root.Path(relative)
}
