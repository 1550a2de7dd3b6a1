package cli

import (
	"context"

	"github.com/spf13/cobra"

	"projroot/internal/types"
)

func newRootDirCommand(opts *resolutionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the project root directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRootDir(cmd.Context(), cmd, opts)
		},
	}
}

func runRootDir(ctx context.Context, cmd *cobra.Command, opts *resolutionOptions) error {
	render, err := opts.renderRequest(cmd)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.RootDir(ctx, opts.rootRequest(cmd))
	if err != nil {
		return err
	}
	render.Resolutions = []types.Resolution{result.Resolution}
	return service.Render(cmd.OutOrStdout(), render)
}
