package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kittyhaven/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item> [qty]",
		Short: "Buy items from the shop by id",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.New("item id is required")
			}
			if len(args) == 2 {
				if _, err := strconv.Atoi(args[1]); err != nil {
					return errors.New("qty must be an integer")
				}
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

			qty := 1
			if len(args) == 2 {
				qty, _ = strconv.Atoi(args[1])
			}
			if err := svc.Buy(ctx, args[0], qty); err != nil {
				return reported(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins left", svc.Coins()))
			return nil
		},
	}

	return cmd
}

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop [number]",
		Short: "List the shop, or buy one of the listed items by number",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one item number")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("number must be an integer")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pick := choice(-1)
			if len(args) == 1 {
				n, _ := strconv.Atoi(args[0])
				pick = choice(n - 1)
			}
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), pick)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconCoin, fmt.Sprintf("Shop (you have %d coins)", svc.Coins())))
				for i, it := range svc.ShopItems() {
					fmt.Fprintf(out, "%2d. %s %-20s %s %s\n", i+1, ui.ItemIcon(it.Type), it.Name, ui.Gold.Render(fmt.Sprintf("%4d", it.Cost)), ui.Muted.Render(it.ID+": "+it.Description))
				}
				return nil
			}
			if int(pick) < 0 || int(pick) >= len(svc.ShopItems()) {
				return fmt.Errorf("no item number %s (see kh shop)", args[0])
			}
			return reported(svc.OpenShop(ctx))
		},
	}

	return cmd
}

func newBagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bag",
		Short: "List the items in the bag",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			entries := svc.Inventory()
			fmt.Fprintln(out, ui.Heading(ui.IconBag, fmt.Sprintf("Bag (%d/%d kinds)", len(entries), svc.Config().InventoryCapacity)))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "- %s %s x%d %s\n", ui.ItemIcon(e.Type), e.Name, e.Quantity, ui.Muted.Render("("+e.ID+")"))
			}
			return nil
		},
	}

	return cmd
}
