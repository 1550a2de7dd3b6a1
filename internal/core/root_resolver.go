package core

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
)

const markerNotFoundMsg = "marker segment not found"

// RootResolver derives a project root from a location by cutting the
// location after the first segment equal to Marker.
type RootResolver struct {
	Marker string
}

func NewRootResolver(marker string) RootResolver {
	return RootResolver{Marker: marker}
}

// SplitLocation splits a location on '/' into ordered segments. An absolute
// location starts with an empty segment.
func SplitLocation(location string) []string {
	return strings.Split(filepath.ToSlash(location), "/")
}

// ProjectDir returns the absolute path ending at the first occurrence of the
// marker segment in location. Debug events go to the logger carried by ctx,
// if any.
func (r RootResolver) ProjectDir(ctx context.Context, location string) (string, error) {
	assert.NotEmpty(ctx, r.Marker, "marker must be set")

	segments := SplitLocation(location)
	index := slices.Index(segments, r.Marker)
	if index < 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(markerNotFoundMsg + ": '" + r.Marker + "' in " + location)
	}
	root := string(filepath.Separator) + filepath.Join(segments[:index+1]...)

	zerolog.Ctx(ctx).Debug().
		Str("marker", r.Marker).
		Str("location", location).
		Int("index", index).
		Str("root", root).
		Msg("project root resolved")
	return root, nil
}

// Path joins relative onto root. Absolute relative paths are rejected rather
// than silently replacing the root.
func (r RootResolver) Path(_ context.Context, root string, relative string) (string, error) {
	if filepath.IsAbs(relative) || strings.HasPrefix(filepath.ToSlash(relative), "/") {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("relative path must not be absolute: " + relative)
	}
	return filepath.Join(root, relative), nil
}

// IsMarkerNotFound reports whether err signals a location without the marker.
// It only reads the builder's fields so a shared error can be checked from
// several goroutines.
func IsMarkerNotFound(err error) bool {
	var builder *errbuilder.ErrBuilder
	if !errors.As(err, &builder) || builder.Code != errbuilder.CodeNotFound {
		return false
	}
	return strings.HasPrefix(builder.Msg, markerNotFoundMsg)
}
