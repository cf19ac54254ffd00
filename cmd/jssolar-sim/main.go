package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/PSJ84/jssolar-project-portal-sub001/internal/config"
	"github.com/PSJ84/jssolar-project-portal-sub001/internal/kepco"
	"github.com/PSJ84/jssolar-project-portal-sub001/internal/server"
	"github.com/PSJ84/jssolar-project-portal-sub001/internal/simulation"
	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/constants"
	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/output"
	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/validation"
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
		level = "info"
	}

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

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

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

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

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
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	listen := flag.String("listen", "", "start the HTTP API on this address instead of running scenarios")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	settings := conf.Settings.Snapshot()
	policy := conf.FinancingPolicy()

	if *listen != "" {
		address := *listen
		if address == "default" {
			address = constants.DefaultServerAddress
		}
		handler := server.NewHandler(logger, server.Options{
			MaxRequestBytes:    conf.Server.MaxRequestBytes,
			RateLimitPerSecond: conf.Server.RateLimitPerSecond,
			Version:            version,
			DefaultSettings:    settings,
			FinancingPolicy:    policy,
			ChargeSchedule:     kepco.DefaultChargeSchedule(),
			InstallmentTerms:   kepco.DefaultInstallmentTerms(),
		})
		logger.Info("listening for simulation requests",
			zap.String("op", "main"),
			zap.String("address", address),
		)
		if err := http.ListenAndServe(address, handler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	validUntil := ""
	if conf.Settings.QuotationValidDays > 0 {
		validUntil = time.Now().AddDate(0, 0, conf.Settings.QuotationValidDays).Format("2006-01-02")
	}

	var results []output.ScenarioResult
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "main"),
			)
			continue
		}

		input, err := scenario.AnalysisInput()
		if err != nil {
			logger.Fatal("invalid scenario configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

		result, err := simulation.Simulate(logger, input, settings, policy)
		if err != nil {
			logger.Fatal("failed to simulate scenario",
				zap.String("op", "main"),
				zap.String("scenario", scenario.Name),
				zap.Error(err),
			)
		}

		results = append(results, output.ScenarioResult{
			Name:       scenario.Name,
			Result:     result,
			ValidUntil: validUntil,
		})
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}

	if conf.Kepco != nil {
		chargeResult, err := kepco.Calculate(logger, conf.Kepco.ChargeInput(),
			kepco.DefaultChargeSchedule(), kepco.DefaultInstallmentTerms())
		if err != nil {
			logger.Fatal("failed to calculate interconnection charge",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		output.PrettyChargeFormat(chargeResult)
	}
}
