// Package main provides the CLI entry point for rollcall.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile     string
	rosterPath  string
	ledgerPath  string
	ledgerSheet string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollcall",
		Short: "Record daily class attendance into a spreadsheet ledger",
		Long: `rollcall turns absent and on-duty roll numbers into a daily report
and keeps an Excel attendance ledger up to date.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Env file to load (default: .env if present)")
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "", "Roster workbook (default: $ROSTER_PATH or students.xlsx)")
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", "", "Ledger workbook (default: $LEDGER_PATH or Attendance.xlsx)")
	rootCmd.PersistentFlags().StringVar(&ledgerSheet, "sheet", "", "Ledger worksheet (default: first sheet)")

	rootCmd.AddCommand(newServeCmd(), newSubmitCmd(), newSeedCmd(), newShowCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
