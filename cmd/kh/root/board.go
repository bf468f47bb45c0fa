package root

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"kittyhaven/internal/engine"
	"kittyhaven/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive cat house",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			// The board owns the terminal, so logs are dropped.
			open := func(ctx context.Context, hooks tui.Hooks) (*engine.Service, func(), error) {
				return newService(ctx, hooks, io.Discard)
			}
			return tui.RunBoard(ctx, open, cmd.OutOrStdout())
		},
	}

	return cmd
}
