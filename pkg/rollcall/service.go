package rollcall

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/ledger"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/roster"
)

// LedgerStore reads and rewrites the whole ledger table.
type LedgerStore interface {
	Read() (*models.Ledger, error)
	Write(*models.Ledger) error
}

// Service turns submissions into reports and ledger updates.
// It does not lock the ledger; concurrent callers must serialize Submit.
type Service struct {
	roster *roster.Roster
	store  LedgerStore
	opts   Options
	logger log.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(r *roster.Roster, store LedgerStore, opts Options, logger log.Logger) *Service {
	if r == nil {
		r = roster.New(nil)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Service{roster: r, store: store, opts: opts, logger: logger}
}

// Roster returns the roster the service resolves names with.
func (s *Service) Roster() *roster.Roster {
	return s.roster
}

// Submit validates a submission, builds its report and, when requested,
// records it in the ledger. Validation and date errors are returned before
// any ledger access. A failed ledger update only clears ExcelUpdated.
func (s *Service) Submit(sub models.Submission) (*models.Result, error) {
	rolls, err := Validate(sub.Absent, sub.OD)
	if err != nil {
		return nil, err
	}

	total := s.roster.Len()
	if sub.TotalStudents != nil {
		total = *sub.TotalStudents
	}
	sum, err := Summarize(rolls, total)
	if err != nil {
		return nil, err
	}

	save := s.opts.ShouldSaveToLedger()
	if sub.SaveToExcel != nil {
		save = *sub.SaveToExcel
	}
	if save && sub.Date != "" {
		if _, err := ledger.ColumnKey(sub.Date); err != nil {
			return nil, err
		}
	}

	header := ReportHeader{
		Date:       sub.Date,
		Hour:       sub.Hour,
		Department: firstNonEmpty(sub.Department, s.opts.department()),
		Course:     firstNonEmpty(sub.Course, s.opts.course()),
	}
	report, warnings := BuildReport(header, rolls, sum, s.roster)

	updated := false
	if save && sub.Date != "" {
		updated = s.UpdateLedger(sub.Date, rolls)
	}

	return &models.Result{
		Report:       report,
		Percentage:   sum.Percentage,
		Present:      sum.Present,
		Absent:       sum.Absent,
		OD:           sum.OD,
		Total:        sum.Total,
		Warnings:     warnings,
		ExcelUpdated: updated,
	}, nil
}

// UpdateLedger runs one read-modify-write cycle for date. Failures are logged
// and reported as false.
func (s *Service) UpdateLedger(date string, rolls Rolls) bool {
	if s.store == nil {
		s.logger.Log("msg", "ledger update skipped", "err", "no ledger store configured")
		return false
	}

	l, err := s.store.Read()
	if err != nil {
		s.logUpdateError(date, err)
		return false
	}

	column, err := ledger.Reconcile(l, date, rolls.Absent, rolls.OD, s.roster)
	if err != nil {
		s.logUpdateError(date, err)
		return false
	}

	if err := s.store.Write(l); err != nil {
		s.logUpdateError(date, err)
		return false
	}

	s.logger.Log("msg", fmt.Sprintf("Updated ledger with date %s", column), "students", len(l.Students))
	return true
}

func (s *Service) logUpdateError(date string, err error) {
	kv := []interface{}{"msg", "error updating ledger", "date", date, "err", err}
	var ioErr *LedgerIOError
	if errors.As(err, &ioErr) {
		kv = append(kv, "op", ioErr.Op, "path", ioErr.Path)
	}
	s.logger.Log(kv...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
