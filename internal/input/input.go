// Package input turns raw user input into a validated analysis window. Both
// the argument path and the interactive path produce a Window and feed it to
// the same Validate function.
package input

import (
	"fmt"
	"os"
	"regexp"
	"time"
)

var timePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}(:\d{2})?$`)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Window is the raw (archive, start, end) triple before validation.
type Window struct {
	Archive string
	Start   string
	End     string
}

// FromArgs builds a Window from the three positional arguments. Validation
// happens separately so the interactive path shares it.
func FromArgs(args []string) (Window, error) {
	if len(args) != 3 {
		return Window{}, fmt.Errorf("expected archive, start time and end time, got %d arguments", len(args))
	}
	return Window{Archive: args[0], Start: args[1], End: args[2]}, nil
}

// ValidTime reports whether a time string matches YYYY-MM-DD HH:MM with
// optional seconds. Calendar validity and timezone are deliberately not
// checked; the PCP tools interpret the values.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// Validate checks the archive path, both time strings, and that the window
// is ordered. It is the single validation point for every input source.
func Validate(w Window) error {
	if w.Archive == "" {
		return fmt.Errorf("archive path is empty")
	}

	info, err := os.Stat(w.Archive)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("archive not found: %s", w.Archive)
	}

	if !ValidTime(w.Start) {
		return fmt.Errorf("invalid start time %q: use YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS", w.Start)
	}
	if !ValidTime(w.End) {
		return fmt.Errorf("invalid end time %q: use YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS", w.End)
	}

	start, err := parseWindowTime(w.Start)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", w.Start, err)
	}
	end, err := parseWindowTime(w.End)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", w.End, err)
	}

	if !start.Before(end) {
		return fmt.Errorf("start time %q is not before end time %q", w.Start, w.End)
	}

	return nil
}

func parseWindowTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
