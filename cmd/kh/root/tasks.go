package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kittyhaven/internal/ledger"
	"kittyhaven/internal/tasks"
	"kittyhaven/internal/ui"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List daily, weekly, achievement and main tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			all := svc.Tasks()
			for _, typ := range []tasks.Type{tasks.TypeDaily, tasks.TypeWeekly, tasks.TypeAchievement, tasks.TypeMain} {
				fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" "+string(typ)))
				for _, t := range all {
					if t.Type != typ {
						continue
					}
					fmt.Fprintln(out, taskLine(t))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	return cmd
}

func taskLine(t tasks.Task) string {
	state := fmt.Sprintf("%d/%d", t.Progress, t.Max)
	switch {
	case t.Claimed:
		state = ui.Muted.Render(ui.IconDone + " claimed")
	case t.Completed:
		state = ui.Gold.Render(ui.IconGift + " ready")
	}
	return fmt.Sprintf("- %s %-18s %s  %s %s", t.Icon, t.Name, state, ui.Muted.Render(t.Reward.String()), ui.Muted.Render("["+t.ID+"]"))
}

func newClaimCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "claim [task-id]",
		Short: "Claim the reward of a completed task",
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("give a task id or --all, not both")
			}
			if !all && len(args) != 1 {
				return errors.New("task id is required (see kh tasks)")
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

			ids := args
			if all {
				ids = nil
				for _, t := range svc.Claimable() {
					ids = append(ids, t.ID)
				}
				if len(ids) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to claim."))
					return nil
				}
			}
			for _, id := range ids {
				if _, err := svc.ClaimTask(ctx, id); err != nil {
					return reported(err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", svc.Coins()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "claim every completed task")
	return cmd
}

func newCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect the coins the cats earned while you were away",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.CollectCoins(ctx); err != nil {
				return reported(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", svc.Coins()))
			return nil
		},
	}

	return cmd
}

func newSignInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in for today's streak reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			// Signing in twice is reported as info and is not an error.
			if _, err := svc.SignIn(ctx); err != nil && !errors.Is(err, ledger.ErrAlreadySignedIn) {
				return reported(err)
			}
			return nil
		},
	}

	return cmd
}
