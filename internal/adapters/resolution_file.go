package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"projroot/internal/ports"
	"projroot/internal/types"
)

type ResolutionFileAdapter struct{}

func NewResolutionFileAdapter() ResolutionFileAdapter {
	return ResolutionFileAdapter{}
}

func (a ResolutionFileAdapter) WriteReport(path string, resolutions []types.Resolution) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	data, err := yaml.Marshal(types.ResolutionReport{Resolutions: resolutions})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode resolution report").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write resolution report").
			WithCause(err)
	}
	return nil
}

var _ ports.ResolutionFilePort = ResolutionFileAdapter{}
