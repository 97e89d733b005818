package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/opex-tool/config"
	"github.com/opex-tool/database"
	"github.com/opex-tool/metrics"
	"github.com/opex-tool/repositories"
	"github.com/opex-tool/services"
	"github.com/opex-tool/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	fondCode := flag.String("fond", "", "code of the fond the report is imported into")
	reportPath := flag.String("report", "-", "VVAIS JSON report to import, - reads stdin")
	metricsFile := flag.String("metrics-file", "", "write Prometheus metrics to this textfile after the import")
	flag.Parse()

	config.LoadEnv()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 2
	}
	logger := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if *fondCode == "" {
		logger.Error("fond code is required", slog.String("flag", "-fond"))
		flag.Usage()
		return 2
	}

	records, err := readReport(*reportPath)
	if err != nil {
		logger.Error("failed to read VVAIS report", slog.String("path", *reportPath), slog.Any("error", err))
		return 1
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("failed to close database", slog.Any("error", err))
		}
	}()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	retry := database.NewRetryPolicy(cfg, logger)
	retry.OnRetry = m.IncrementRetry

	fonds := services.NewFondService(repositories.NewFondRepository(db, retry),
		services.WithLogger(logger), services.WithMetrics(m))
	inventories := services.NewInventoryService(repositories.NewInventoryRepository(db, retry),
		services.WithLogger(logger), services.WithMetrics(m))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fond, err := fonds.GetFondByCode(ctx, *fondCode)
	if err != nil {
		logger.Error("fond not available", slog.String("fond_code", *fondCode), slog.Any("error", err))
		return 1
	}

	report := inventories.ImportVVAISReport(ctx, fond, records)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Error("failed to write import report", slog.Any("error", err))
	}

	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, reg); err != nil {
			logger.Error("failed to write metrics textfile", slog.String("path", *metricsFile), slog.Any("error", err))
		}
	}

	if report.Failed() > 0 {
		return 1
	}
	return 0
}

// readReport decodes a VVAIS report: a JSON array of inventory objects. Numbers
// are kept as json.Number so integers stay distinguishable from fractions.
func readReport(path string) ([]map[string]interface{}, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []map[string]interface{}
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return records, nil
}
