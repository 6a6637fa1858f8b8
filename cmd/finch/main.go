package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/finchapp/finch/internal/advisor"
	"github.com/finchapp/finch/internal/config"
	"github.com/finchapp/finch/internal/health"
	"github.com/finchapp/finch/internal/server"
	"github.com/finchapp/finch/internal/store"
	"github.com/finchapp/finch/pkg/constants"
	"github.com/finchapp/finch/pkg/datetime"
	"github.com/finchapp/finch/pkg/format"
	"github.com/finchapp/finch/pkg/goals"
	"github.com/finchapp/finch/pkg/ids"
	"github.com/finchapp/finch/pkg/output"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	addrFlag := flag.String("addr", "", "HTTP listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	summaryFlag := flag.Bool("summary", false, "print a financial summary and exit")
	writeConfig := flag.Bool("write-config", false, "write the default configuration to the config path and exit")
	flag.Parse()

	if *writeConfig {
		var conf config.Configuration
		conf.ApplyDefaults()
		data, err := conf.MarshalYAMLBytes()
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to encode default configuration\", \"error\": \"%v\"}\n", err)
			return
		}
		if err := os.WriteFile(*configLocation, data, 0644); err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to write configuration to %s\", \"error\": \"%v\"}\n", *configLocation, err)
		}
		return
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	st, err := store.Open(conf.Store.Path, logger)
	if err != nil {
		logger.Fatal("failed to open snapshot store",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = st.Close()
	}()

	if *summaryFlag {
		printSummary(st)
		return
	}

	advisorClient := advisor.NewClient(advisor.Config{
		BaseURL: conf.Advisor.BaseURL,
		APIKey:  conf.Advisor.APIKey,
		Model:   conf.Advisor.Model,
		Timeout: conf.AdvisorTimeout(),
	}, logger)
	if advisorClient == nil {
		logger.Info("advisor disabled; advisory endpoints will return empty results",
			zap.String("op", "main"),
		)
	}

	// Schedule the nightly briefing job.
	if !conf.Briefing.Disabled {
		scheduler := cron.New()
		_, err = scheduler.AddFunc(conf.Briefing.Schedule, func() {
			runBriefing(logger, st)
		})
		if err != nil {
			logger.Fatal("failed to schedule briefing job",
				zap.String("op", "main"),
				zap.String("schedule", conf.Briefing.Schedule),
				zap.Error(err),
			)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	address := conf.Server.Address
	if *addrFlag != "" {
		address = *addrFlag
	}

	apiHandler := server.NewHandler(server.Options{
		Logger:  logger,
		Store:   st,
		Advisor: advisorClient,
		IDs:     ids.UUID{},
		Version: version,
	})

	logger.Info("starting finch API",
		zap.String("op", "main"),
		zap.String("address", address),
	)
	if err := http.ListenAndServe(address, apiHandler); err != nil {
		logger.Fatal("server exited",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

// runBriefing refreshes the persisted health snapshot and logs any bills due
// soon. The recompute is idempotent, so re-runs are harmless.
func runBriefing(logger *zap.Logger, st *store.Store) {
	record := health.Recompute(st.LoadAccounts(), st.LoadHealth())
	if err := st.SaveHealth(record); err != nil {
		logger.Error("briefing failed to save health snapshot",
			zap.String("op", "main.runBriefing"),
			zap.Error(err),
		)
		return
	}

	now := time.Now()
	horizon := now.AddDate(0, 0, constants.BriefingDueSoonDays)
	for _, bill := range st.LoadBills() {
		due, err := datetime.ParseDate(bill.NextDueDate)
		if err != nil {
			continue
		}
		if due.After(now) && due.Before(horizon) {
			logger.Info(fmt.Sprintf("bill %s for %s due %s", bill.Name, format.Currency(bill.Amount), bill.NextDueDate),
				zap.String("op", "main.runBriefing"),
			)
		}
	}

	logger.Info("briefing complete",
		zap.String("op", "main.runBriefing"),
		zap.Int("score", record.Score),
		zap.Float64("netWorth", record.NetWorth()),
	)
}

func printSummary(st *store.Store) {
	now := time.Now()
	accounts := st.LoadAccounts()
	record := health.Recompute(accounts, st.LoadHealth())

	var goalLines []output.GoalLine
	for _, g := range st.LoadGoals() {
		goalLines = append(goalLines, output.GoalLine{
			Goal:   g,
			Status: goals.Project(g.TargetAmount, g.CurrentAmount, g.Deadline, now),
		})
	}

	output.PrettySummary(record, accounts, goalLines)
}
