package ports

import (
	"io"

	"projroot/internal/types"
)

// LocationPort reports the absolute location the project root is derived from.
type LocationPort interface {
	Location() (string, error)
}

// ResolutionWriterPort renders resolutions for a user.
type ResolutionWriterPort interface {
	Write(w io.Writer, resolutions []types.Resolution, format types.OutputFormat) error
}

// ResolutionFilePort persists resolutions as a report file.
type ResolutionFilePort interface {
	WriteReport(path string, resolutions []types.Resolution) error
}
