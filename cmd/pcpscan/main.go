package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vishwab/pcpscan/internal/catalog"
	"github.com/vishwab/pcpscan/internal/core"
	"github.com/vishwab/pcpscan/internal/input"
	"github.com/vishwab/pcpscan/internal/runner"
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pcpscan [archive] [start_time] [end_time]",
		Short: "PCP Archive Analyzer",
		Long: `pcpscan runs a fixed set of PCP reporting commands (pmdumplog, pmrep, pcp)
against a recorded performance archive over a time window and collects each
report's output into a per-run directory.

Pass the archive and both times together, or nothing to be prompted.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("provide archive, start time and end time together, or no arguments for interactive mode")
			}
			return nil
		},
		RunE: runAnalysis,
	}

	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "List the report catalog without running anything",
		RunE:  listReports,
	}

	labelCmd := &cobra.Command{
		Use:   "label [archive]",
		Short: "Print the archive label and metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showLabel,
	}

	// Config command
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	configGetCmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get configuration value",
		RunE:  getConfig,
	}

	configSetCmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set configuration value",
		RunE:  setConfig,
	}

	configListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration",
		RunE:  listConfig,
	}

	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)

	cleanupCmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove old analysis directories based on retention",
		RunE:  cleanup,
	}

	rootCmd.AddCommand(
		reportsCmd,
		labelCmd,
		configCmd,
		cleanupCmd,
	)

	// Execute with Fang styling; an interrupt aborts the whole run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(core.Version),
		fang.WithColorSchemeFunc(fang.DefaultColorScheme),
	)
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nInterrupted.")
		os.Exit(130)
	}
	if err != nil {
		os.Exit(1)
	}
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := core.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var win input.Window
	if len(args) == 3 {
		win, err = input.FromArgs(args)
	} else {
		collector := input.NewCollector()
		collector.Preview = func(archive string) {
			previewLabel(cmd.Context(), cfg, archive)
		}
		win, err = collector.Collect(".")
	}
	if err != nil {
		return err
	}

	if err := input.Validate(win); err != nil {
		return err
	}

	if missing := runner.MissingTools(cfg); len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s (install the pcp packages)", strings.Join(missing, ", "))
	}

	hasConf := runner.HasConfFile(cfg.PMRep.ConfFile)
	if !hasConf {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Note: %s not found, conf-based sections may fail", cfg.PMRep.ConfFile)))
	}

	rc := core.RunContext{
		Archive:   win.Archive,
		Start:     win.Start,
		End:       win.End,
		OutputDir: runner.OutputDirName(cfg.Run.OutputPrefix, win.Start, win.End),
		ConfFile:  cfg.PMRep.ConfFile,
		HasConf:   hasConf,
		Timeout:   cfg.CommandTimeout(),
	}
	rc.ErrorLog = filepath.Join(rc.OutputDir, core.ErrorLogName)

	if err := os.MkdirAll(rc.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	elog, err := runner.NewErrorLog(rc)
	if err != nil {
		return err
	}
	defer elog.Close()

	fmt.Println()
	fmt.Println(titleStyle.Render("Analyzing PCP archive"))
	fmt.Printf("%s %s\n", subtitleStyle.Render("Archive:"), win.Archive)
	fmt.Printf("%s %s -> %s\n", subtitleStyle.Render("Window: "), win.Start, win.End)
	fmt.Printf("%s %s/\n\n", subtitleStyle.Render("Output: "), rc.OutputDir)

	reports := catalog.Build(cfg, rc)

	r := &runner.Runner{
		Ctx: rc,
		Log: elog,
		OnStart: func(rep core.Report) {
			fmt.Printf("→ %s ", padDots(rep.Name, 20))
		},
		OnResult: func(rep core.Report, outcome core.Outcome) {
			if outcome.OK {
				fmt.Println(successStyle.Render("OK"))
			} else {
				fmt.Println(errorStyle.Render("FAILED"))
			}
		},
	}

	sum := r.Run(cmd.Context(), reports)

	if cmd.Context().Err() != nil {
		return fmt.Errorf("interrupted")
	}

	fmt.Printf("\nDone. %d/%d sections completed.\n", sum.Succeeded, sum.Total)
	fmt.Printf("%s ./%s/\n", infoStyle.Render("Results in:"), rc.OutputDir)
	fmt.Printf("%s %s\n", infoStyle.Render("Errors logged to:"), elog.Path())
	if sum.Failed() > 0 {
		fmt.Println(warnStyle.Render("Some commands failed, check the errors file for details."))
	}

	return nil
}

func previewLabel(ctx context.Context, cfg *core.Config, archive string) {
	rule := subtitleStyle.Render(strings.Repeat("─", 60))

	fmt.Printf("\nReading archive metadata for: %s\n", archive)
	fmt.Println(rule)

	out, err := runner.CaptureLabel(ctx, cfg, archive)
	if strings.TrimSpace(out) != "" {
		fmt.Println(strings.TrimSpace(out))
	} else if err == nil {
		fmt.Println("(no output)")
	}
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not read archive label: %v", err)))
	}

	fmt.Println(rule)
	fmt.Println()
}

func listReports(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("Report catalog"), subtitleStyle.Render(fmt.Sprintf("(v%d)", catalog.TableVersion)))
	fmt.Println()

	for i, d := range catalog.Descriptors() {
		fmt.Printf("%2d. %-16s %-10s %s", i+1, d.Name, d.Tool, d.OutputFile)
		if d.NeedsConf {
			fmt.Print(subtitleStyle.Render("  (uses pmrep conf)"))
		}
		fmt.Println()
	}

	return nil
}

func showLabel(cmd *cobra.Command, args []string) error {
	cfg, err := core.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, err := runner.CaptureLabel(cmd.Context(), cfg, args[0])
	if strings.TrimSpace(out) != "" {
		fmt.Println(strings.TrimSpace(out))
	}
	return err
}

func getConfig(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("config key required")
	}

	cfg, err := core.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key := args[0]
	switch key {
	case "tools.pmdumplog":
		fmt.Println(cfg.Tools.PMDumpLog)
	case "tools.pmrep":
		fmt.Println(cfg.Tools.PMRep)
	case "tools.pcp":
		fmt.Println(cfg.Tools.PCP)
	case "pmrep.conf_file":
		fmt.Println(cfg.PMRep.ConfFile)
	case "run.timeout_seconds":
		fmt.Println(cfg.Run.TimeoutSeconds)
	case "run.label_timeout_seconds":
		fmt.Println(cfg.Run.LabelTimeoutSeconds)
	case "run.output_prefix":
		fmt.Println(cfg.Run.OutputPrefix)
	case "run.retention_days":
		fmt.Println(cfg.Run.RetentionDays)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return nil
}

func setConfig(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("config key and value required")
	}

	cfg, err := core.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key := args[0]
	value := args[1]

	switch key {
	case "tools.pmdumplog":
		cfg.Tools.PMDumpLog = value
	case "tools.pmrep":
		cfg.Tools.PMRep = value
	case "tools.pcp":
		cfg.Tools.PCP = value
	case "pmrep.conf_file":
		cfg.PMRep.ConfFile = value
	case "run.timeout_seconds":
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid timeout_seconds value: %w", err)
		}
		cfg.Run.TimeoutSeconds = seconds
	case "run.label_timeout_seconds":
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid label_timeout_seconds value: %w", err)
		}
		cfg.Run.LabelTimeoutSeconds = seconds
	case "run.output_prefix":
		cfg.Run.OutputPrefix = value
	case "run.retention_days":
		days, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retention_days value: %w", err)
		}
		cfg.Run.RetentionDays = days
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println(successStyle.Render("✓ Configuration updated"))
	return nil
}

func listConfig(cmd *cobra.Command, args []string) error {
	cfg, err := core.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func cleanup(cmd *cobra.Command, args []string) error {
	cfg, err := core.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -cfg.Run.RetentionDays)
	removed, err := runner.CleanupOutputDirs(".", cfg.Run.OutputPrefix, cutoff)
	if err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	for _, name := range removed {
		fmt.Printf("%s %s/\n", subtitleStyle.Render("removed"), name)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Cleanup completed (%d removed)", len(removed))))
	return nil
}

func padDots(name string, width int) string {
	if len(name) >= width {
		return name
	}
	return name + strings.Repeat(".", width-len(name))
}
