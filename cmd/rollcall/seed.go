package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/ledger"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/logging"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/roster"
)

func newSeedCmd() *cobra.Command {
	var (
		withLedger bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a sample roster and, optionally, an empty ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger()
			students := roster.SampleStudents()

			if err := refuseOverwrite(cfg.RosterPath, force); err != nil {
				return err
			}
			err = logging.TimeFunction(logger, "roster seed", func() error {
				return roster.Write(cfg.RosterPath, students)
			})
			if err != nil {
				return fmt.Errorf("failed to write roster: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s created successfully with %d students\n", cfg.RosterPath, len(students))

			if !withLedger {
				return nil
			}
			if err := refuseOverwrite(cfg.LedgerPath, force); err != nil {
				return err
			}
			names := make([]string, len(students))
			for i, s := range students {
				names[i] = s.Name
			}
			l := models.NewLedger(cfg.LedgerSheet, names)
			ledger.Recompute(l)
			if err := ledger.NewStore(cfg.LedgerPath, cfg.LedgerSheet).Write(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s created successfully\n", cfg.LedgerPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withLedger, "with-ledger", false, "Also create an empty ledger for the sample class")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func refuseOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return nil
}
