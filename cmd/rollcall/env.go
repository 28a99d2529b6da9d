package main

import (
	"github.com/go-kit/log"
	"github.com/ukaji3/rollcall-go/pkg/rollcall"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/config"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/ledger"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/logging"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/roster"
)

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	if rosterPath != "" {
		cfg.RosterPath = rosterPath
	}
	if ledgerPath != "" {
		cfg.LedgerPath = ledgerPath
	}
	if ledgerSheet != "" {
		cfg.LedgerSheet = ledgerSheet
	}
	return cfg, nil
}

// newService wires roster, ledger store and options from cfg.
func newService(cfg *config.Config, logger log.Logger) *rollcall.Service {
	r := roster.Load(cfg.RosterPath, logger)
	store := ledger.NewStore(cfg.LedgerPath, cfg.LedgerSheet)
	opts := rollcall.Options{
		Department: cfg.Department,
		Course:     cfg.Course,
	}
	return rollcall.NewService(r, store, opts, logger)
}

func newLogger() log.Logger {
	return logging.New(nil)
}
