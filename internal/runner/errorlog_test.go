package runner

import (
	"regexp"
	"strings"
	"testing"
)

func TestErrorLogHeader(t *testing.T) {
	rc, elog, _ := testSetup(t)
	elog.Close()

	logged := readErrorLog(t, rc)
	if !strings.Contains(logged, "Analysis started:") {
		t.Errorf("Header missing start line:\n%s", logged)
	}
	if !strings.Contains(logged, rc.Archive) {
		t.Errorf("Header missing archive:\n%s", logged)
	}
	if !strings.Contains(logged, rc.Start) || !strings.Contains(logged, rc.End) {
		t.Errorf("Header missing window:\n%s", logged)
	}
}

func TestErrorLogTimestampPrefix(t *testing.T) {
	rc, elog, _ := testSetup(t)

	elog.Logf("Command failed (rc=%d): %s", 2, "pmrep -z")
	elog.Close()

	logged := readErrorLog(t, rc)
	entry := regexp.MustCompile(`(?m)^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} Command failed \(rc=2\): pmrep -z$`)
	if !entry.MatchString(logged) {
		t.Errorf("Entry missing timestamp prefix:\n%s", logged)
	}
}

func TestErrorLogEcho(t *testing.T) {
	_, elog, echo := testSetup(t)

	elog.Logf("something went wrong")

	if !strings.Contains(echo.String(), "something went wrong") {
		t.Errorf("Message not echoed: %q", echo.String())
	}
	if regexp.MustCompile(`^\d{4}-`).MatchString(echo.String()) {
		t.Error("Echoed message should not carry the log timestamp prefix")
	}
}

func TestErrorLogNilEcho(t *testing.T) {
	_, elog, _ := testSetup(t)
	elog.Echo = nil

	// Must not panic without an echo writer.
	elog.Logf("quiet entry")
}

func TestErrorLogPath(t *testing.T) {
	rc, elog, _ := testSetup(t)
	if elog.Path() != rc.ErrorLog {
		t.Errorf("Path() = %q, expected %q", elog.Path(), rc.ErrorLog)
	}
}
