package adapters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"projroot/internal/ports"
	"projroot/internal/types"
)

type ResolutionWriterAdapter struct{}

func NewResolutionWriterAdapter() ResolutionWriterAdapter {
	return ResolutionWriterAdapter{}
}

// Write renders resolutions. Text output is one target path per line; a
// single resolution is rendered as a bare document in yaml and json.
func (a ResolutionWriterAdapter) Write(w io.Writer, resolutions []types.Resolution, format types.OutputFormat) error {
	switch format {
	case types.OutputFormatText, "":
		for _, res := range resolutions {
			if _, err := fmt.Fprintln(w, res.Target()); err != nil {
				return writeError(err)
			}
		}
		return nil
	case types.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(document(resolutions)); err != nil {
			return writeError(err)
		}
		if err := encoder.Close(); err != nil {
			return writeError(err)
		}
		return nil
	case types.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(document(resolutions)); err != nil {
			return writeError(err)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown output format '" + string(format) + "'")
	}
}

func document(resolutions []types.Resolution) any {
	if len(resolutions) == 1 {
		return resolutions[0]
	}
	return resolutions
}

func writeError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write output").
		WithCause(err)
}

var _ ports.ResolutionWriterPort = ResolutionWriterAdapter{}
