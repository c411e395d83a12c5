package analyze

import (
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/ybocharov/salary-trends/models"
	"github.com/ybocharov/salary-trends/pkg/currency"
)

const defaultWorkers = 5

// AnalyzeAction runs the full pipeline: list chunk files, aggregate them in
// parallel, merge, finalize, print.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.AnalyzeConfig{Workers: defaultWorkers}
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(2)
		}
		if loaded.Workers > 0 {
			config.Workers = loaded.Workers
		}
		config.Dir = loaded.Dir
		config.Profession = loaded.Profession
		config.RatesPath = loaded.RatesPath
	}

	// Explicit flags override config file values.
	if c.IsSet("dir") {
		config.Dir = c.String("dir")
	}
	if c.IsSet("profession") {
		config.Profession = c.String("profession")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("rates") {
		config.RatesPath = c.String("rates")
	}

	if config.Dir == "" {
		return cli.Exit("a chunk directory is required (--dir or config file)", 1)
	}
	if config.Workers <= 0 {
		return cli.Exit("worker count must be positive", 1)
	}

	rates := currency.DefaultTable
	if config.RatesPath != "" {
		var err error
		rates, err = currency.Load(config.RatesPath)
		if err != nil {
			logger.Error("failed to load rate table", "error", err)
			os.Exit(2)
		}
		logger.Info("Loaded currency rate table", "path", config.RatesPath, "currencies", len(rates))
	}

	files, err := listChunkFiles(config.Dir)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	statistics, areas, err := run(logger, config, files, rates, !c.Bool("quiet"))
	if err != nil {
		logger.Error("analysis failed", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	printStatistics(statistics, config.Profession)
	if c.Bool("areas") {
		printAreaReport(areas)
	}

	logger.Info("Analysis complete", "chunks", len(files), "total_time_seconds", time.Since(startTime).Seconds())
	return nil
}
