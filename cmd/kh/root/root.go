package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kittyhaven/internal/ui"
)

const Version = "0.1.0"

var (
	configFlag string
	dbFlag     string
)

// reportedError marks an error the service already showed as a notification.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kh",
		Short:         "Kittyhaven, a virtual cat house in your terminal",
		Long:          "Kittyhaven keeps a household of cats: feed them, play with them, train their skills and complete tasks for coins.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $KITTYHAVEN_CONFIG or ~/.kittyhaven.toml)")
	cmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database file (default $KITTYHAVEN_DB or ~/.kittyhaven.db)")

	cmd.AddCommand(
		newStatusCmd(),
		newPetCmd(),
		newFeedCmd(),
		newPlayCmd(),
		newTrainCmd(),
		newBuyCmd(),
		newShopCmd(),
		newBagCmd(),
		newTasksCmd(),
		newClaimCmd(),
		newCollectCmd(),
		newSignInCmd(),
		newAdoptCmd(),
		newRenameCmd(),
		newSelectCmd(),
		newBoardCmd(),
		newRestoreCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var r reportedError
		if !errors.As(err, &r) {
			fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		}
		os.Exit(1)
	}
}
