package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/checker"
	"github.com/jonathan/resume-checker/internal/config"
	"github.com/jonathan/resume-checker/internal/logging"
	"github.com/jonathan/resume-checker/internal/observability"
	"github.com/jonathan/resume-checker/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a resume file against the expected format",
	Long:  "Loads a YAML resume file, validates its structure against the expected format, and logs a consolidated report of every missing or mistyped field.",
	RunE:  runCheck,
}

var (
	checkResumeFile string
	checkConfigFile string
	checkLogLevel   string
	checkLogFormat  string
	checkVerbose    bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkResumeFile, "resume", "r", "", "Path to the resume YAML file")
	checkCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "", "Path to a JSON config file")
	checkCmd.Flags().StringVar(&checkLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	checkCmd.Flags().StringVar(&checkLogFormat, "log-format", "", "Log format: json, console")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print a per-section summary of the check")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if checkConfigFile != "" {
		loaded, err := config.LoadConfig(checkConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Flags override config file values
	if checkResumeFile != "" {
		cfg.Resume = checkResumeFile
	}
	if checkLogLevel != "" {
		cfg.LogLevel = checkLogLevel
	}
	if checkLogFormat != "" {
		cfg.LogFormat = checkLogFormat
	}
	if checkVerbose {
		cfg.Verbose = true
	}

	if cfg.Resume == "" {
		return fmt.Errorf("no resume file given: use --resume or set 'resume' in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		logCfg.Format = cfg.LogFormat
	}
	logger := logging.New(logCfg)

	chk := checker.New(report.NewLogSink(logger))
	result, err := chk.CheckFile(cfg.Resume)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintCheckSummary(result.Sections)
	}

	if !result.Valid {
		// The report was already logged through the sink; keep the
		// command error short.
		cmd.SilenceUsage = true
		return fmt.Errorf("resume format check failed for %s", cfg.Resume)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Resume format is valid: %s\n", cfg.Resume)
	return nil
}
