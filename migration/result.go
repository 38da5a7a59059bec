package migration

import (
	"encoding/json"
	"fmt"
)

// RecordIssue ties a per-row anomaly to the offending source record.
type RecordIssue struct {
	Record Row    `json:"record"`
	Reason string `json:"error"`
}

// Result is the per-stage outcome of one importer run. It is never persisted;
// each run produces a fresh one and writes it to process output only.
//
// Skips and store failures land in Errors with the offending record.
// Warnings holds non-skipping anomalies: substituted timestamps and
// unresolvable optional references. Assumed counts timestamp substitutions;
// a row with two unparseable date cells books two.
type Result struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Assumed   int
	Errors    []RecordIssue
	Warnings  []RecordIssue
}

func (r *Result) skip(row Row, reason string) {
	r.Skipped++
	r.Errors = append(r.Errors, RecordIssue{Record: row, Reason: reason})
}

func (r *Result) fail(row Row, err error) {
	r.Failed++
	r.Errors = append(r.Errors, RecordIssue{Record: row, Reason: err.Error()})
}

func (r *Result) warnf(row Row, format string, args ...any) {
	r.Warnings = append(r.Warnings, RecordIssue{Record: row, Reason: fmt.Sprintf(format, args...)})
}

// CombineResults sums per-file sub-results into one stage total.
func CombineResults(results ...*Result) *Result {
	combined := &Result{}
	for _, r := range results {
		combined.Total += r.Total
		combined.Succeeded += r.Succeeded
		combined.Failed += r.Failed
		combined.Skipped += r.Skipped
		combined.Assumed += r.Assumed
		combined.Errors = append(combined.Errors, r.Errors...)
		combined.Warnings = append(combined.Warnings, r.Warnings...)
	}
	return combined
}

func (r RecordIssue) recordJSON() string {
	b, err := json.Marshal(r.Record)
	if err != nil {
		return fmt.Sprintf("%v", r.Record)
	}
	return string(b)
}
