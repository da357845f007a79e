package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vishwab/pcpscan/internal/core"
)

// Execute runs a single report command: stdout goes to the report's output
// file, stderr is buffered and lands in the error log when the command
// fails. The output file is created before the spawn and kept even when the
// command fails, so every attempted report leaves exactly one file behind.
func Execute(ctx context.Context, rep core.Report, rc core.RunContext, elog *ErrorLog) core.Outcome {
	out, err := os.Create(rep.OutputPath)
	if err != nil {
		elog.Logf("Cannot open output file for %s: %v", rep.Name, err)
		return core.Outcome{Name: rep.Name, Reason: core.FailOutput}
	}
	defer out.Close()

	cctx, cancel := context.WithTimeout(ctx, rc.Timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, rep.Argv[0], rep.Argv[1:]...)
	cmd.Stdout = out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err == nil {
		return core.Outcome{Name: rep.Name, OK: true}
	}

	switch {
	case errors.Is(cctx.Err(), context.DeadlineExceeded):
		elog.Logf("Command timed out after %s: %s", rc.Timeout, rep.CommandLine())
		return core.Outcome{Name: rep.Name, Reason: core.FailTimeout}

	case errors.Is(cctx.Err(), context.Canceled):
		elog.Logf("Command interrupted: %s", rep.CommandLine())
		return core.Outcome{Name: rep.Name, Reason: core.FailInterrupt}

	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			elog.Logf("Command failed (rc=%d): %s", exitErr.ExitCode(), rep.CommandLine())
			if stderr.Len() > 0 {
				elog.Logf("stderr:\n%s", strings.TrimSpace(stderr.String()))
			}
			return core.Outcome{Name: rep.Name, Reason: core.FailExit, ExitCode: exitErr.ExitCode()}
		}

		elog.Logf("Exception running %s: %v", rep.CommandLine(), err)
		return core.Outcome{Name: rep.Name, Reason: core.FailSpawn}
	}
}

// CaptureLabel runs `pmdumplog -z -L` against the archive with the shorter
// label timeout and returns the merged output. Used by the label command and
// the interactive preview; its failure never affects the main batch.
func CaptureLabel(ctx context.Context, cfg *core.Config, archive string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, cfg.LabelTimeout())
	defer cancel()

	cmd := exec.CommandContext(cctx, cfg.Tools.PMDumpLog, "-z", "-L", archive)
	out, err := cmd.CombinedOutput()

	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return string(out), fmt.Errorf("timed out after %s reading archive label", cfg.LabelTimeout())
	}
	if err != nil {
		return string(out), fmt.Errorf("failed to read archive label: %w", err)
	}
	return string(out), nil
}
