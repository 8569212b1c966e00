package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hashit",
		Short: "Password and admin key tool for the DewataNation panel",
		Long: `hashit computes the hashes the game server stores in the accounts and
admin tables, so operators can check or reset credentials by hand.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newDigestCmd())
	rootCmd.AddCommand(newHashCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newKeyHashCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
