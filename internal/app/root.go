package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"

	"projroot/internal/adapters"
	"projroot/internal/core"
	"projroot/internal/types"
)

func (s Service) RootDir(ctx context.Context, req RootRequest) (RootResult, error) {
	marker := strings.TrimSpace(req.Marker)
	if marker == "" {
		marker = strings.TrimSpace(s.Marker)
	}
	if marker == "" {
		return RootResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("marker is required")
	}
	if strings.ContainsAny(marker, `/\`) || marker == "." || marker == ".." {
		return RootResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("marker must be a single path segment: " + marker)
	}

	if root := strings.TrimSpace(req.Root); root != "" {
		if !filepath.IsAbs(root) {
			return RootResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("configured root must be absolute: " + root)
		}
		root = filepath.Clean(root)
		zerolog.Ctx(ctx).Debug().Str("root", root).Msg("using configured project root")
		return RootResult{Resolution: types.Resolution{
			Marker: marker,
			Source: types.LocationSourceConfig,
			Root:   root,
		}}, nil
	}

	locator := s.Location
	source := types.LocationSourceRuntime
	if strings.TrimSpace(req.Location) != "" {
		locator = adapters.NewStaticLocationAdapter(req.Location)
		source = types.LocationSourceStatic
	}
	if locator == nil {
		return RootResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("no location source configured")
	}
	location, err := locator.Location()
	if err != nil {
		return RootResult{}, err
	}

	root, err := core.NewRootResolver(marker).ProjectDir(ctx, location)
	if err != nil {
		return RootResult{}, err
	}
	return RootResult{Resolution: types.Resolution{
		Marker:   marker,
		Location: location,
		Source:   source,
		Root:     root,
	}}, nil
}

// FilePath resolves every relative path against a single root lookup.
func (s Service) FilePath(ctx context.Context, req FilePathRequest) (FilePathResult, error) {
	if len(req.RelativePaths) == 0 {
		return FilePathResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one relative path is required")
	}
	rootResult, err := s.RootDir(ctx, req.RootRequest)
	if err != nil {
		return FilePathResult{}, err
	}
	base := rootResult.Resolution
	resolver := core.NewRootResolver(base.Marker)

	resolutions := make([]types.Resolution, 0, len(req.RelativePaths))
	for _, relative := range req.RelativePaths {
		path, err := resolver.Path(ctx, base.Root, relative)
		if err != nil {
			return FilePathResult{}, err
		}
		res := base
		res.Relative = relative
		res.Path = path
		resolutions = append(resolutions, res)
	}
	return FilePathResult{Resolutions: resolutions}, nil
}
