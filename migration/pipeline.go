package migration

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Pipeline carries the collaborators every importer needs: the persistence
// store, the process logger, a per-run correlation id, and the writer for
// operator-facing progress output. Tests inject a fake store and a buffer.
type Pipeline struct {
	Store  Store
	Logger *logrus.Logger
	RunID  string
	Out    io.Writer
}

func NewPipeline(store Store, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
	}
	return &Pipeline{
		Store:  store,
		Logger: logger,
		RunID:  uuid.NewString(),
		Out:    os.Stdout,
	}
}

func (p *Pipeline) log(funcName string) *logrus.Entry {
	return p.Logger.WithFields(logrus.Fields{
		"module":   "migration",
		"funcName": funcName,
		"run_id":   p.RunID,
	})
}

func (p *Pipeline) printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

func (p *Pipeline) logProgress(stage string, processed, total int) {
	percentage := 100.0
	if total > 0 {
		percentage = float64(processed) / float64(total) * 100
	}
	p.printf("[%s] Progress: %d/%d (%.1f%%)\n", stage, processed, total, percentage)
}

// LogResult prints the per-stage summary block. It is always printed, even
// when the run will exit non-zero, so a failed batch can be triaged without
// re-running.
func (p *Pipeline) LogResult(stage string, result *Result) {
	line := strings.Repeat("=", 60)
	p.printf("\n%s\n", line)
	p.printf("Migration Stage: %s\n", stage)
	p.printf("%s\n", line)
	p.printf("Total Records:    %d\n", result.Total)
	p.printf("Succeeded:        %d\n", result.Succeeded)
	p.printf("Failed:           %d\n", result.Failed)
	p.printf("Skipped:          %d\n", result.Skipped)
	if result.Assumed > 0 {
		p.printf("Assumed Dates:    %d\n", result.Assumed)
	}
	p.printf("%s\n\n", line)

	if len(result.Errors) > 0 {
		p.printf("Errors encountered:\n")
		for i, issue := range result.Errors {
			p.printf("  %d. %s\n", i+1, issue.Reason)
			p.printf("     Record: %s\n", issue.recordJSON())
		}
		p.printf("\n")
	}
	if len(result.Warnings) > 0 {
		p.printf("Warnings:\n")
		for i, issue := range result.Warnings {
			p.printf("  %d. %s\n", i+1, issue.Reason)
		}
		p.printf("\n")
	}
}

// parseDateAssumed parses a legacy date column whose blank or malformed
// values fall back to the current time, and books the substitution on the
// result as a typed warning instead of hiding it in a log line.
func parseDateAssumed(row Row, column string, result *Result) time.Time {
	parsed, assumed := ParseDate(row.Get(column))
	if assumed {
		result.Assumed++
		result.warnf(row, "assumed current timestamp for %q (value %q)", column, row.Get(column))
	}
	return parsed
}
