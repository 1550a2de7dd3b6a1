package cli

import (
	"context"

	"github.com/spf13/cobra"

	"projroot/internal/app"
)

func newPathCommand(opts *resolutionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path <relative-path>...",
		Short: "Resolve paths relative to the project root",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd.Context(), cmd, opts, args)
		},
	}
}

func runPath(ctx context.Context, cmd *cobra.Command, opts *resolutionOptions, relative []string) error {
	render, err := opts.renderRequest(cmd)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.FilePath(ctx, app.FilePathRequest{
		RootRequest:   opts.rootRequest(cmd),
		RelativePaths: relative,
	})
	if err != nil {
		return err
	}
	render.Resolutions = result.Resolutions
	return service.Render(cmd.OutOrStdout(), render)
}
