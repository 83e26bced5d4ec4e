// Command vfchat is a terminal chat client for a conversational runtime
// version.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "vfchat",
		Short: "Chat with a conversational runtime version from the terminal",
		Long: `vfchat talks to the runtime interaction endpoint of a single version.
Configuration is read from VF_* environment variables, optionally loaded
from an env file, and can be overridden with flags.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")

	// Running vfchat without a subcommand starts a chat.
	chat := chatCmd(&envFile)
	rootCmd.RunE = chat.RunE
	rootCmd.Args = cobra.NoArgs
	rootCmd.Flags().AddFlagSet(chat.Flags())

	rootCmd.AddCommand(chat, schemaCmd())

	return rootCmd
}
