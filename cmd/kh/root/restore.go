package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kittyhaven/internal/engine"
	"kittyhaven/internal/storage"
	"kittyhaven/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Roll the household back to the previous save",
		Long: `Restore the saved household to the version before the latest save.

Every save keeps a short history. Restoring:
- Drops the latest saved version
- Makes the previous version current

Use --list to see the stored versions first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, cleanup, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			repo := storage.NewKVRepo(db)
			out := cmd.OutOrStdout()
			if list {
				versions, err := repo.History(ctx, engine.SaveKey)
				if err != nil {
					return err
				}
				if len(versions) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("No saves yet."))
					return nil
				}
				for _, v := range versions {
					fmt.Fprintf(out, "- #%d %s %s\n", v.ID, v.SavedAt.Local().Format("2006-01-02 15:04:05"), ui.Muted.Render(fmt.Sprintf("(%d bytes)", v.Size)))
				}
				return nil
			}

			if _, err := repo.Rollback(ctx, engine.SaveKey); err != nil {
				if errors.Is(err, storage.ErrNoHistory) {
					return errors.New("no earlier save to restore")
				}
				return err
			}
			fmt.Fprintln(out, ui.Warn.Render(ui.IconUndo+" Restored the previous save"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list stored versions instead of restoring")
	return cmd
}
