package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
)

func newSubmitCmd() *cobra.Command {
	var (
		sub    models.Submission
		total  int
		noSave bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Record one day's attendance and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sub.Date = strings.TrimSpace(sub.Date)
			if cmd.Flags().Changed("total") {
				sub.TotalStudents = &total
			}
			save := !noSave
			sub.SaveToExcel = &save

			svc := newService(cfg, newLogger())
			result, err := svc.Submit(sub)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Report)
			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			if save && sub.Date != "" && !result.ExcelUpdated {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s was not updated\n", cfg.LedgerPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sub.Date, "date", "", "Date as DD.MM.YYYY")
	cmd.Flags().StringVar(&sub.Hour, "hour", "", "Class hour")
	cmd.Flags().StringVar(&sub.Department, "department", "", "Department line (default: $DEPARTMENT)")
	cmd.Flags().StringVar(&sub.Course, "course", "", "Course label (default: $COURSE)")
	cmd.Flags().IntVar(&total, "total", 0, "Total students (default: roster size)")
	cmd.Flags().StringVar(&sub.Absent, "absent", "", "Comma-separated absent roll numbers")
	cmd.Flags().StringVar(&sub.OD, "od", "", "Comma-separated on-duty roll numbers")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not update the ledger")
	return cmd
}
