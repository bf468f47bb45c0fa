package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kittyhaven/internal/pet"
	"kittyhaven/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show coins, streak and every cat",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			st := svc.Status()
			fmt.Fprintln(out, ui.Heading(ui.IconCat, "Household"))
			fmt.Fprintln(out, ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, st.Coins)))
			fmt.Fprintln(out, ui.LabelValue("Pending", fmt.Sprintf("%d %s", st.Pending, ui.Muted.Render("(kh collect)"))))
			fmt.Fprintln(out, ui.LabelValue("Earned", st.TotalEarned))
			signed := ui.Bad.Render("not yet today")
			if st.SignedToday {
				signed = ui.Good.Render("signed in today")
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days, %s", st.Streak, signed)))
			if n := len(svc.Claimable()); n > 0 {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s %d tasks ready to claim", ui.IconGift, n)))
			}
			fmt.Fprintln(out, "")

			for i, v := range svc.Pets() {
				printPet(out, i, v, i == st.Selected)
			}
			return nil
		},
	}

	return cmd
}

func printPet(out io.Writer, index int, v pet.View, selected bool) {
	marker := " "
	if selected {
		marker = ui.Key.Render(">")
	}
	title := fmt.Sprintf("%s %d. %s %s", marker, index+1, v.Name, ui.Muted.Render(fmt.Sprintf("(%s %s, %s)", v.Color, v.Pattern, v.Personality)))
	fmt.Fprintln(out, ui.H2.Render(title))
	fmt.Fprintf(out, "    %s %s  lv %d %s\n", ui.MoodText(v.Mood), ui.Muted.Render(string(v.State)), v.Level, ui.Meter(v.Exp, v.MaxExp, 12))
	fmt.Fprintf(out, "    %s %s  %s %s  %s %s\n",
		ui.IconFood, ui.Meter(v.Satiety, pet.MaxVital, 10),
		ui.IconHeart, ui.Meter(v.Happiness, pet.MaxVital, 10),
		ui.IconBolt, ui.Meter(v.Energy, pet.MaxVital, 10))
	for _, name := range pet.SkillNames {
		sk := v.Skills[name]
		fmt.Fprintf(out, "    %-9s lv %d  %s\n", name, sk.Level, ui.Muted.Render(fmt.Sprintf("(%d points, talent %d)", sk.Points, sk.Talent)))
	}
}
