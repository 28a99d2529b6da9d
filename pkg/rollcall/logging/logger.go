// Package logging builds the logfmt logger used across rollcall.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	gokitlog "github.com/go-kit/log"
)

// New creates a logfmt logger writing to w with timestamp and caller keys.
// A nil w writes to stderr.
func New(w io.Writer) gokitlog.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	return gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)
}

// TimeFunction wraps a function with timing information
func TimeFunction(logger gokitlog.Logger, name string, fn func() error) error {
	startTime := time.Now()
	err := fn()
	elapsed := time.Since(startTime)

	if err != nil {
		logger.Log("msg", fmt.Sprintf("Completed %s with error", name), "err", err, "took", elapsed)
	} else {
		logger.Log("msg", fmt.Sprintf("Completed %s", name), "took", elapsed)
	}
	return err
}
