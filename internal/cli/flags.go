package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"projroot/internal/app"
)

func (o *resolutionOptions) rootRequest(cmd *cobra.Command) app.RootRequest {
	return app.RootRequest{
		Marker:   resolveString(cmd, o.Marker, "marker", "marker"),
		Location: resolveString(cmd, o.Location, "location", "location"),
		Root:     resolveString(cmd, o.Root, "root", "root"),
	}
}

func (o *resolutionOptions) renderRequest(cmd *cobra.Command) (app.RenderRequest, error) {
	format, err := app.ParseFormat(resolveString(cmd, o.Format, "format", "format"))
	if err != nil {
		return app.RenderRequest{}, err
	}
	return app.RenderRequest{
		Format:     format,
		ReportPath: resolveString(cmd, o.Report, "report", "report"),
	}, nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.InheritedFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
