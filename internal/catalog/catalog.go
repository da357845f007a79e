// Package catalog holds the fixed table of report descriptors: which PCP
// commands run against an archive and where their output lands. The table is
// ordered for presentation; the commands are independent of each other.
package catalog

import (
	"path/filepath"

	"github.com/vishwab/pcpscan/internal/core"
)

// TableVersion bumps whenever the report list changes shape.
const TableVersion = 2

var table = []core.Descriptor{
	{
		Name:       "archive-label",
		Tool:       core.ToolPMDumpLog,
		OutputFile: "pcp-archive-label",
		Args: func(rc core.RunContext) []string {
			return []string{"-z", "-L", rc.Archive}
		},
	},
	{
		Name:       "load",
		Tool:       core.ToolPMRep,
		OutputFile: "pcp-load",
		Args: func(rc core.RunContext) []string {
			return []string{"-z", "-a", rc.Archive, "-p", "kernel.all.load", "-S", "@" + rc.Start, "-T", "@" + rc.End}
		},
	},
	{
		Name:       "atop",
		Tool:       core.ToolPCP,
		OutputFile: "pcp-atop",
		Args: func(rc core.RunContext) []string {
			return pcpArgs(rc, "atop")
		},
	},
	{
		Name:       "mpstat",
		Tool:       core.ToolPCP,
		OutputFile: "pcp-mpstat",
		Args: func(rc core.RunContext) []string {
			return pcpArgs(rc, "mpstat")
		},
	},
	{
		Name:       "memory",
		Tool:       core.ToolPMRep,
		OutputFile: "pcp-memory",
		NeedsConf:  true,
		Args: func(rc core.RunContext) []string {
			return []string{"-z", "-a", rc.Archive, "-c", rc.ConfFile, ":meminfo-1", "-p", "-S", "@" + rc.Start, "-T", "@" + rc.End}
		},
	},
	{
		Name:       "iostat",
		Tool:       core.ToolPCP,
		OutputFile: "pcp-iostat",
		Args: func(rc core.RunContext) []string {
			return pcpArgs(rc, "iostat", "-x", "1")
		},
	},
	{
		Name:       "vmstat",
		Tool:       core.ToolPMRep,
		OutputFile: "pcp-vmstat",
		Args: func(rc core.RunContext) []string {
			return []string{"-z", "-a", rc.Archive, "-p", "-S", "@" + rc.Start, "-T", "@" + rc.End, ":vmstat"}
		},
	},
	{
		Name:       "runq-blocked",
		Tool:       core.ToolPMRep,
		OutputFile: "pcp-runq-blocked",
		Args: func(rc core.RunContext) []string {
			return []string{"-z", "-a", rc.Archive, "-p", "proc.runq.runnable", "proc.runq.blocked", "-S", "@" + rc.Start, "-T", "@" + rc.End}
		},
	},
	{
		Name:       "netstat",
		Tool:       core.ToolPCP,
		OutputFile: "pcp-netstat",
		Args: func(rc core.RunContext) []string {
			return pcpArgs(rc, "netstat")
		},
	},
	{
		Name:       "ps",
		Tool:       core.ToolPCP,
		OutputFile: "pcp-ps",
		Args: func(rc core.RunContext) []string {
			return pcpArgs(rc, "ps", "-u")
		},
	},
	{
		Name:       "pidstat",
		Tool:       core.ToolPCP,
		OutputFile: "pcp-pidstat",
		Args: func(rc core.RunContext) []string {
			return pcpArgs(rc, "pidstat", "-rl", "1")
		},
	},
	{
		Name:       "slabinfo",
		Tool:       core.ToolPMRep,
		OutputFile: "pcp-slabinfo",
		NeedsConf:  true,
		Args: func(rc core.RunContext) []string {
			return []string{"-z", "-a", rc.Archive, "-c", rc.ConfFile, ":slabinfo", "-p", "-S", "@" + rc.Start, "-T", "@" + rc.End}
		},
	},
	{
		Name:       "numastat",
		Tool:       core.ToolPMRep,
		OutputFile: "pcp-numastat",
		NeedsConf:  true,
		Args: func(rc core.RunContext) []string {
			return []string{"-z", "-a", rc.Archive, "-c", rc.ConfFile, ":numastat-1", "-u", "-p", "-S", "@" + rc.Start, "-T", "@" + rc.End}
		},
	},
}

// pcpArgs builds the common `pcp -z -a <archive> --start @S --finish @E`
// prefix followed by the subcommand and its flags.
func pcpArgs(rc core.RunContext, sub ...string) []string {
	args := []string{"-z", "-a", rc.Archive, "--start", "@" + rc.Start, "--finish", "@" + rc.End}
	return append(args, sub...)
}

// Descriptors returns the full ordered table. Callers must not modify it.
func Descriptors() []core.Descriptor {
	return table
}

// Build binds the table to one run, producing fully substituted argv vectors.
// Arguments are passed to the spawn call as a vector, never through a shell,
// so archive paths and time strings need no quoting.
func Build(cfg *core.Config, rc core.RunContext) []core.Report {
	reports := make([]core.Report, 0, len(table))
	for _, d := range table {
		argv := append([]string{cfg.Binary(d.Tool)}, d.Args(rc)...)
		reports = append(reports, core.Report{
			Name:       d.Name,
			Tool:       d.Tool,
			Argv:       argv,
			OutputPath: filepath.Join(rc.OutputDir, d.OutputFile),
			NeedsConf:  d.NeedsConf,
		})
	}
	return reports
}
