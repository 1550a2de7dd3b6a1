package app

import (
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"projroot/internal/types"
)

var validFormats = map[types.OutputFormat]struct{}{
	types.OutputFormatText: {},
	types.OutputFormatYAML: {},
	types.OutputFormatJSON: {},
}

// ParseFormat normalises a user supplied output format; empty means text.
func ParseFormat(value string) (types.OutputFormat, error) {
	format := types.OutputFormat(strings.ToLower(strings.TrimSpace(value)))
	if format == "" {
		return types.OutputFormatText, nil
	}
	if _, ok := validFormats[format]; !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown output format '" + value + "' (expected text, yaml or json)")
	}
	return format, nil
}

// Render writes resolutions to w and, when requested, to a report file.
func (s Service) Render(w io.Writer, req RenderRequest) error {
	if strings.TrimSpace(req.ReportPath) != "" {
		if err := s.Report.WriteReport(req.ReportPath, req.Resolutions); err != nil {
			return err
		}
	}
	return s.Writer.Write(w, req.Resolutions, req.Format)
}
