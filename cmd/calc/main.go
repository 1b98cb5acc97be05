// Package main is the entry point for the calc CLI.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jacksmith/desk/internal/calc"
	"github.com/jacksmith/desk/internal/cli"
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
	Use:   "calc",
	Short: "calc - an interactive four-function calculator",
	Long: `calc asks for two numbers and an operator (+, -, *, /), prints the
result and offers to go again.

Press Ctrl+C at any prompt to leave.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCalc,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("calc version {{.Version}}\n")
}

func runCalc(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return calc.NewSession(cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}
