package runner

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vishwab/pcpscan/internal/core"
)

// ErrorLog is the single diagnostic sink for a run. Every entry is
// timestamped in the log file and echoed to Echo (stderr by default) so the
// console never carries detail the log is missing.
type ErrorLog struct {
	path string
	f    *os.File
	Echo io.Writer
}

func NewErrorLog(rc core.RunContext) (*ErrorLog, error) {
	f, err := os.Create(rc.ErrorLog)
	if err != nil {
		return nil, fmt.Errorf("failed to create error log: %w", err)
	}

	fmt.Fprintf(f, "Analysis started: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(f, "Archive : %s\n", rc.Archive)
	fmt.Fprintf(f, "Period  : %s -> %s\n\n", rc.Start, rc.End)

	return &ErrorLog{
		path: rc.ErrorLog,
		f:    f,
		Echo: os.Stderr,
	}, nil
}

func (l *ErrorLog) Path() string {
	return l.path
}

func (l *ErrorLog) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.f, "%s %s\n", time.Now().Format(core.TimestampFormat), msg)
	if l.Echo != nil {
		fmt.Fprintln(l.Echo, msg)
	}
}

func (l *ErrorLog) Close() error {
	return l.f.Close()
}
