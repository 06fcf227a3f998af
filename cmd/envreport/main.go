package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"envreport/internal/config"
	"envreport/internal/logging"
	"envreport/internal/report"
	"envreport/internal/tui"
)

const showFullFlag = "--nvidia-smi"

func main() {
	if len(os.Args) <= 1 {
		runShow()
		return
	}

	command := strings.ToLower(os.Args[1])
	if handler, ok := commandHandlers()[command]; ok {
		handler()
		return
	}

	// a bare flag is shorthand for "show <flag>"
	if command == showFullFlag {
		runShow()
		return
	}

	fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
	printUsage()
	os.Exit(1)
}

func commandHandlers() map[string]func() {
	return map[string]func(){
		"show":    runShow,
		"tui":     runTUI,
		"config":  runConfig,
		"version": runVersion,
		"help":    printUsage,
		"--help":  printUsage,
		"-h":      printUsage,
	}
}

func runVersion() {
	fmt.Printf("envreport version %s\n", report.Version)
}

// loadConfig returns the merged configuration, or the defaults when it is
// invalid, so a broken config file never prevents a report.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load configuration, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func newLogger(cfg config.Config) *logging.Logger {
	return logging.NewLoggerWithWriter(
		logging.ParseLevel(cfg.Logging.Level),
		logging.Format(cfg.Logging.Format),
		os.Stderr,
	)
}

// runShow prints the report to stdout
func runShow() {
	cfg := loadConfig()
	logger := newLogger(cfg)

	showFull := cfg.NvidiaSMI.ShowOutput || hasFlag(os.Args[1:], showFullFlag)

	logger.Debug("app.started", "Generating report", map[string]interface{}{
		"version":   report.Version,
		"show_full": showFull,
	})

	report.NewFromConfig(cfg, logger).Generate(os.Stdout, showFull)
}

// runTUI starts the interactive report viewer
func runTUI() {
	cfg := loadConfig()
	logger := newLogger(cfg)

	startTime := time.Now()
	logger.Info("app.started", "Application started", map[string]interface{}{
		"version": report.Version,
		"ts":      startTime.UTC().Format(time.RFC3339),
	})

	reporter := report.NewFromConfig(cfg, logger)
	showFull := cfg.NvidiaSMI.ShowOutput || hasFlag(os.Args[2:], showFullFlag)

	if err := tui.Run(logger, reporter.Text, showFull); err != nil {
		logger.Error("app.error", "Application error", map[string]interface{}{
			"error": err.Error(),
		})
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("app.exited", "Application exited", map[string]interface{}{
		"ts":       time.Now().UTC().Format(time.RFC3339),
		"duration": time.Since(startTime).String(),
	})
}

func runConfig() {
	logger := logging.NewLoggerWithWriter(logging.LevelInfo, logging.FormatText, os.Stderr)

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: envreport config <subcommand>\n")
		fmt.Fprintf(os.Stderr, "Subcommands:\n")
		fmt.Fprintf(os.Stderr, "  test [path]  Test configuration file for validity\n")
		os.Exit(1)
	}

	subcommand := strings.ToLower(os.Args[2])

	switch subcommand {
	case "test":
		runConfigTest(logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", subcommand)
		fmt.Fprintf(os.Stderr, "Valid subcommands: test\n")
		os.Exit(1)
	}
}

func runConfigTest(logger *logging.Logger) {
	var cfg config.Config
	var configErr error

	if len(os.Args) > 3 {
		path := os.Args[3]
		fmt.Printf("Testing configuration file: %s\n", path)
		cfg, configErr = config.LoadFrom(path)
	} else {
		fmt.Println("Testing configuration (system + user merge):")
		fmt.Printf("  System config: %s\n", config.SystemConfigPath())
		if userPath := config.UserConfigPath(); userPath != "" {
			fmt.Printf("  User config:   %s\n", userPath)
		}
		fmt.Println()

		cfg, configErr = config.Load()
	}

	if configErr != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration validation FAILED:\n")
		fmt.Fprintf(os.Stderr, "   %v\n", configErr)

		logger.Error("config.validation.error", "Configuration validation failed", map[string]interface{}{
			"error": configErr.Error(),
		})
		os.Exit(1)
	}

	fmt.Println("✓ Configuration is VALID")
	fmt.Println()
	fmt.Println("Configuration Summary:")
	fmt.Printf("  Env Variable:         %s\n", cfg.EnvVar)
	fmt.Printf("  nvidia-smi Binary:    %s\n", cfg.NvidiaSMI.Binary)
	fmt.Printf("  Show nvidia-smi:      %t\n", cfg.NvidiaSMI.ShowOutput)
	fmt.Printf("  Optional Package:     %s\n", cfg.Distro.OptionalPackage)
	fmt.Printf("  Install Command:      %s\n", cfg.Distro.InstallCommand)
	fmt.Printf("  Log Level:            %s\n", cfg.Logging.Level)
	fmt.Printf("  Log Format:           %s\n", cfg.Logging.Format)

	logger.Info("config.validation.ok", "Configuration validation passed", map[string]interface{}{
		"env_var": cfg.EnvVar,
		"binary":  cfg.NvidiaSMI.Binary,
	})
}

func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func printUsage() {
	fmt.Printf(`envreport - Environment Diagnostic Report (version %s)

Usage:
  envreport                        Print the environment report (default)
  envreport show [--nvidia-smi]    Print the report, optionally with the full nvidia-smi output
  envreport tui [--nvidia-smi]     Browse the report interactively (s: toggle output, r: refresh, q: quit)
  envreport config test [path]     Test configuration file for validity (defaults to system/user configs)
  envreport version                Print version information
  envreport help                   Show this help message

Paste the report including the opening and closing ` + "```" + ` lines when asking for help.
`, report.Version)
}
