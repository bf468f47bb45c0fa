package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kittyhaven/internal/engine"
	"kittyhaven/internal/ui"
)

func newAdoptCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "adopt [name]",
		Short: "Adopt another cat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.AdoptInput{Kind: kind}
			if len(args) == 1 {
				in.Name = args[0]
			}
			res, err := svc.Adopt(ctx, in)
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d. %s %s\n", ui.IconCat, res.Index+1, res.Pet.Name,
				ui.Muted.Render(fmt.Sprintf("(%s %s, %s, cost %d)", res.Pet.Color, res.Pet.Pattern, res.Pet.Personality, res.Cost)))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "coat color (orange, black, white, grey, calico, cream)")
	return cmd
}

func newRenameCmd() *cobra.Command {
	var cat int
	cmd := &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename a cat",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.Join(args, " ")
			if err := svc.Rename(ctx, catIndex(svc, cat), name); err != nil {
				return reported(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Renamed to "+strings.TrimSpace(name)))
			return nil
		},
	}
	addCatFlag(cmd, &cat)
	return cmd
}

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select <number>",
		Short: "Choose which cat receives actions and task exp",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("cat number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("cat number must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			n, _ := strconv.Atoi(args[0])
			if err := svc.Select(ctx, n-1); err != nil {
				return reported(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Selected", svc.Pets()[n-1].Name))
			return nil
		},
	}

	return cmd
}
