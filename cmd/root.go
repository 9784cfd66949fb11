package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicer/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoicer",
	Short: "Invoicer - extract structured data from invoice PDFs",
	Long: `Invoicer is a command-line tool that extracts structured invoice data
(vendor, invoice number, date, amount, currency, spend category) from
PDF documents using rule-based pattern matching, and classifies each
document as a complete invoice, a partial one, or not an invoice at all.

Single documents produce a JSON record; batch runs over a folder produce
a CSV, an XLSX dashboard with a monthly spending chart, and a statistics
summary.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("Invoicer executed")

		fmt.Println("Welcome to Invoicer!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
