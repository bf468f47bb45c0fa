package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kittyhaven/internal/engine"
	"kittyhaven/internal/pet"
	"kittyhaven/internal/ui"
)

// catIndex turns the 1-based --cat flag into a roster index. Zero means the
// selected cat.
func catIndex(svc *engine.Service, n int) int {
	if n <= 0 {
		return svc.Selected()
	}
	return n - 1
}

func addCatFlag(cmd *cobra.Command, n *int) {
	cmd.Flags().IntVar(n, "cat", 0, "cat number from kh status (default: selected cat)")
}

func effectLine(e pet.ItemEffect) string {
	var parts []string
	add := func(label string, v float64) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%+.0f %s", v, label))
		}
	}
	add("satiety", e.Satiety)
	add("happiness", e.Happiness)
	add("energy", e.Energy)
	add("exp", e.Exp)
	if len(parts) == 0 {
		return ui.Muted.Render("no effect")
	}
	return strings.Join(parts, ", ")
}

func newPetCmd() *cobra.Command {
	var cat int
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Stroke a cat",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			i := catIndex(svc, cat)
			res, err := svc.Pet(ctx, i)
			if err != nil {
				return reported(err)
			}
			v := svc.Pets()[i]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s purrs. %s\n", ui.IconHeart, v.Name, ui.Gold.Render(fmt.Sprintf("+%d coins", res.Coins)))
			return nil
		},
	}
	addCatFlag(cmd, &cat)
	return cmd
}

func newFeedCmd() *cobra.Command {
	var cat int
	cmd := &cobra.Command{
		Use:   "feed [item]",
		Short: "Feed a cat from the bag (default: its favorite food)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return useItem(cmd, cat, args, "Fed")
		},
	}
	addCatFlag(cmd, &cat)
	return cmd
}

func newPlayCmd() *cobra.Command {
	var cat int
	cmd := &cobra.Command{
		Use:   "play [item]",
		Short: "Play with a cat using a toy from the bag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return useItem(cmd, cat, args, "Played with")
		},
	}
	addCatFlag(cmd, &cat)
	return cmd
}

func useItem(cmd *cobra.Command, cat int, args []string, verb string) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
	if err != nil {
		return err
	}
	defer cleanup()

	item := ""
	if len(args) == 1 {
		item = args[0]
	}
	i := catIndex(svc, cat)
	var eff pet.ItemEffect
	if verb == "Fed" {
		eff, err = svc.Feed(ctx, i, item)
	} else {
		eff, err = svc.Play(ctx, i, item)
	}
	if err != nil {
		return reported(err)
	}
	v := svc.Pets()[i]
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s: %s\n", ui.IconSparkle, verb, v.Name, effectLine(eff))
	return nil
}

func newTrainCmd() *cobra.Command {
	var cat int
	cmd := &cobra.Command{
		Use:       "train <skill>",
		Short:     "Spend energy to train a skill (stamina, charm, strength, fortune)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"stamina", "charm", "strength", "fortune"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			i := catIndex(svc, cat)
			res, err := svc.Train(ctx, i, pet.SkillName(strings.ToLower(args[0])))
			if err != nil {
				return reported(err)
			}
			v := svc.Pets()[i]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s trained %s: %s\n", ui.IconBolt, v.Name, res.Skill.Skill,
				ui.Muted.Render(fmt.Sprintf("+%.0f skill exp, -%.0f energy, skill lv %d", res.Skill.Exp, res.EnergySpent, res.Skill.Level)))
			return nil
		},
	}
	addCatFlag(cmd, &cat)
	return cmd
}
