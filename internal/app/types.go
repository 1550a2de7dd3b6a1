package app

import "projroot/internal/types"

// RootRequest selects how the project root is obtained. Root wins over
// Location, which wins over the service's own location port.
type RootRequest struct {
	Marker   string
	Location string
	Root     string
}

type RootResult struct {
	Resolution types.Resolution
}

type FilePathRequest struct {
	RootRequest
	RelativePaths []string
}

type FilePathResult struct {
	Resolutions []types.Resolution
}

type RenderRequest struct {
	Resolutions []types.Resolution
	Format      types.OutputFormat
	ReportPath  string
}
