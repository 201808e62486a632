package main

import (
	"github.com/spf13/cobra"

	applog "doroga/internal/log"
	"doroga/internal/theme"
)

type rootFlags struct {
	dbPath     string
	profile    string
	storageKey string
	tokensPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themectl",
		Short:         "Inspect and change the doroga theme from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				return applog.SetLevel("debug")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite file holding persisted preferences (default $XDG_CONFIG_HOME/doroga/theme.db)")
	cmd.PersistentFlags().StringVar(&flags.profile, "profile", "default", "Preference profile to read and write")
	cmd.PersistentFlags().StringVar(&flags.storageKey, "key", theme.StorageKey, "Storage key the mode is persisted under")
	cmd.PersistentFlags().StringVar(&flags.tokensPath, "tokens", "", "Token sheet YAML (default: built-in sheet)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newToggleCmd(flags))
	cmd.AddCommand(newColorCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newPickCmd(flags))

	return cmd
}
