package cmd

import (
	"errors"
	"os"

	"github.com/pawhub/pawhub/cmd/migrate"
	"github.com/pawhub/pawhub/cmd/runserver"
	"github.com/pawhub/pawhub/cmd/setup"
	"github.com/pawhub/pawhub/cmd/sync"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runserver.StartCmd)
	rootCmd.AddCommand(migrate.StartCmd)
	rootCmd.AddCommand(setup.StartCmd)
	rootCmd.AddCommand(sync.StartCmd)
}

var rootCmd = &cobra.Command{
	Use:          "pawhub",
	Short:        "pawhub",
	SilenceUsage: true,
	Long:         `pawhub`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New(
				"requires at least one arg, " +
					"you can view the available parameters through `--help`",
			)
		}
		return nil
	},
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run:               func(cmd *cobra.Command, args []string) {},
}

//Execute : apply commands
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}
