// Package main is the entry point for the pwgen CLI.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jacksmith/desk/internal/cli"
	"github.com/jacksmith/desk/internal/password"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pwgen",
	Short: "pwgen - generate a random password",
	Long: `pwgen asks for a length and prints one password of that many
characters drawn from ASCII letters, digits and punctuation.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPwgen,
}

// generator is replaced in tests.
var generator *password.Generator

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("pwgen version {{.Version}}\n")
}

func runPwgen(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return password.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), generator).Run(ctx)
}
