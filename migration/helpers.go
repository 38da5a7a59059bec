// Package migration implements the Bubble-export → MySQL migration pipeline:
// reading legacy CSV/XLSX exports, importing users, companies, campaigns,
// newsletter stats and packages with preserved legacy ids, and validating the
// migrated store.
package migration

import (
	"strconv"
	"strings"
	"time"
)

// ParseBoolean is three-valued: nil for blank/absent, true only for the
// affirmative spellings Bubble uses, false for any other non-blank value.
func ParseBoolean(value string) *bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return nil
	}
	b := v == "yes" || v == "true" || v == "1"
	return &b
}

// Bubble exports dates like "Jul 22, 2020 1:40 pm", but older exports carry
// ISO and US-slash forms too.
var dateLayouts = []string{
	"Jan 2, 2006 3:04 pm",
	"Jan 2, 2006 3:04:05 pm",
	"Jan 2, 2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 3:04 pm",
	"1/2/2006 15:04",
	"1/2/2006",
}

// ParseDate parses a legacy date cell. On blank or unparseable input it
// substitutes the current wall-clock time and reports assumed=true so the
// caller can account for the substitution instead of losing it in a log line.
func ParseDate(value string) (t time.Time, assumed bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Now(), true
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, v); err == nil {
			return parsed, false
		}
	}
	return time.Now(), true
}

// ParseList splits comma-separated text into trimmed, non-empty elements.
// Blank input returns nil, not an empty list; the caller decides whether the
// target column substitutes the empty list.
func ParseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func ParseIntValue(value string) *int {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func ParseFloatValue(value string) *float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// CleanString trims and returns nil for blank input.
func CleanString(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
