// Package main demonstrates the rolling regression forecaster on daily
// electricity consumption against air temperature.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sartorproj/gorollreg/config"
	"github.com/sartorproj/gorollreg/report"
	"github.com/sartorproj/gorollreg/rolling"
	"github.com/sartorproj/gorollreg/stats"
	"github.com/sartorproj/gorollreg/timeseries"
)

func main() {
	var (
		configPath string
		dataPath   string
		outPath    string
		compress   bool
		logLevel   string
	)

	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	fs.StringVarP(&configPath, "config", "c", "", "YAML run configuration (defaults when empty)")
	fs.StringVarP(&dataPath, "data", "d", "", "observations CSV (overrides data.path)")
	fs.StringVarP(&outPath, "out", "o", "", "report output file (overrides report.path)")
	fs.BoolVar(&compress, "compress", false, "zstd-compress the report")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")
	_ = fs.Parse(os.Args[1:])

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	if fs.Changed("data") {
		cfg.Data.Path = dataPath
	}
	if fs.Changed("out") {
		cfg.Report.Path = outPath
	}
	if fs.Changed("compress") {
		cfg.Report.Compress = compress
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cfg.Data.Path == "" {
		cfg.Data.Path = findData()
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = "rolling_results.json"
		if cfg.Report.Compress {
			cfg.Report.Path += ".zst"
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

// findData locates the bundled dataset
func findData() string {
	for _, p := range []string{"data", "./data", "../data"} {
		path := filepath.Join(p, "electricity.csv")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join("data", "electricity.csv")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoRollReg Demonstration - Rolling Polynomial Regression")
	fmt.Println(strings.Repeat("=", 80))

	obs, err := timeseries.LoadObservationsFile(cfg.Data.Path, cfg.CSVOptions())
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Data.Path, err)
	}

	initial, incoming, err := timeseries.SplitObservations(obs, cfg.WindowSize)
	if err != nil {
		return err
	}

	resp := timeseries.New(responses(initial))
	fmt.Printf("\nData: %s\n", cfg.Data.Path)
	fmt.Printf("   Loaded %d observations, window %d, incoming %d\n", len(obs), len(initial), len(incoming))
	fmt.Printf("   Initial response: mean %.2f, std %.2f, range %.2f to %.2f\n",
		resp.Mean(), resp.Std(), resp.Min(), resp.Max())

	f, err := rolling.New(cfg.RollingConfig(logger))
	if err != nil {
		return err
	}

	out, err := f.Run(initial, incoming)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\nINITIAL WINDOW FIT\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	fmt.Println(out.Initial.Summary())

	maxLag := min(10, len(initial)/2)
	if acf := stats.ACF(out.Initial.Residuals, maxLag); acf != nil {
		bound := stats.ACFConfBound(len(initial))
		fmt.Printf("   Residual ACF significant lags (±%.3f): %v\n", bound, stats.SignificantLags(acf, bound))
	}

	fmt.Printf("\n   %-6s %10s %10s %12s %12s\n", "Day", "Actual", "Fitted", "Low", "High")
	for i, o := range initial {
		iv := out.Initial.Intervals[i]
		fmt.Printf("   %-6g %10.2f %10.2f %12.2f %12.2f\n", o.Day, o.Response, out.Initial.Fitted[i], iv.Low, iv.High)
	}

	fmt.Printf("\n%s\nROLLING FORECASTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	fmt.Printf("   %-6s %10s %10s %12s %12s  %s\n", "Day", "Actual", "Forecast", "Low", "High", "")
	for _, s := range out.Steps {
		if s.Failed() {
			fmt.Printf("   %-6g %10.2f  failed: %v\n", s.Observation.Day, s.Actual(), s.Err)
			continue
		}
		mark := "in"
		if !s.Covered() {
			mark = "OUT"
		}
		fmt.Printf("   %-6g %10.2f %10.2f %12.2f %12.2f  %s\n", s.Observation.Day, s.Actual(),
			s.Forecast.Value, s.Forecast.Interval.Low, s.Forecast.Interval.High, mark)
	}

	m := out.Metrics
	fmt.Printf("\n   Steps: %d ok, %d failed\n", m.N, m.Failed)
	fmt.Printf("   RMSE=%.2f  MAE=%.2f  MAPE=%.2f%%  coverage=%.0f%%\n", m.RMSE, m.MAE, m.MAPE, m.Coverage*100)

	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	reg := cfg.RegressionConfig()
	rep := report.Build(report.Meta{
		Source:      cfg.Data.Path,
		WindowSize:  cfg.WindowSize,
		Alpha:       reg.Alpha,
		Confidence:  reg.Confidence,
		Solver:      string(reg.Solver),
		OnStepError: cfg.OnStepError,
	}, initial, out.Initial, out.Steps)

	file, err := os.Create(cfg.Report.Path)
	if err != nil {
		return err
	}
	if err := report.Write(file, rep, cfg.Report.Compress); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	fmt.Printf("Exported %d steps to %s (checksum %s)\n", len(out.Steps), cfg.Report.Path, rep.Checksum)
	fmt.Println(strings.Repeat("=", 80))
	return nil
}

func responses(obs []timeseries.Observation) []float64 {
	y := make([]float64, len(obs))
	for i, o := range obs {
		y[i] = o.Response
	}
	return y
}
