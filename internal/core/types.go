package core

import (
	"strings"
	"time"
)

// Descriptor is a single entry in the report catalog: one external command
// whose stdout becomes one file in the output directory. The argument list
// is built per run from a RunContext; descriptors themselves never change
// after program start.
type Descriptor struct {
	Name       string
	Tool       string
	OutputFile string
	NeedsConf  bool
	Args       func(rc RunContext) []string
}

// Report is a descriptor bound to a concrete run: the argv vector is fully
// substituted and the output path is absolute within the run's directory.
type Report struct {
	Name       string
	Tool       string
	Argv       []string
	OutputPath string
	NeedsConf  bool
}

// CommandLine renders the argv vector for diagnostics. The command is never
// executed from this string.
func (r Report) CommandLine() string {
	return strings.Join(r.Argv, " ")
}

// RunContext carries everything a single analysis run needs. It is built
// once after validation and passed explicitly; there is no package-level
// run state.
type RunContext struct {
	Archive   string
	Start     string
	End       string
	OutputDir string
	ErrorLog  string
	ConfFile  string
	HasConf   bool
	Timeout   time.Duration
}

// Failure reasons recorded per report.
const (
	FailExit      = "exit"
	FailTimeout   = "timeout"
	FailSpawn     = "spawn"
	FailOutput    = "output"
	FailInterrupt = "interrupt"
)

type Outcome struct {
	Name     string
	OK       bool
	Reason   string
	ExitCode int
}

type Summary struct {
	Succeeded int
	Total     int
	Outcomes  []Outcome
}

func (s Summary) Failed() int {
	return s.Total - s.Succeeded
}
