package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gostonefire/chainhashmap/bench"
	"github.com/gostonefire/chainhashmap/config"
	"github.com/gostonefire/chainhashmap/dataset"
	"github.com/gostonefire/chainhashmap/internal/logutil"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Flag Names
const (
	nmConfig     = "config"
	nmReport     = "report"
	nmJSON       = "json"
	nmSeed       = "seed"
	nmHash       = "hash"
	nmSizing     = "sizing"
	nmCapacity   = "capacity"
	nmLoadFactor = "load-factor"
	nmMetricAddr = "metrics-addr"
	nmMetricFile = "metrics-file"
	nmLogLevel   = "L"
	nmLogFormat  = "log-format"
)

var (
	configPath = flag.String(nmConfig, "", "config file path")
	report     = flag.String(nmReport, config.DefaultReportFile, "CSV file to append timing rows to, empty disables it")
	jsonPath   = flag.String(nmJSON, "", "file to write a JSON summary to, empty disables it")
	seed       = flag.Int64(nmSeed, 0, "seed of the shuffled ordering, 0 picks a time based seed")
	hashName   = flag.String(nmHash, "", "hash algorithm: crc32, murmur3, xxhash, farm or polynomial")
	sizing     = flag.String(nmSizing, "", "table sizing: pow2 or prime, empty uses the algorithm default")
	capacity   = flag.Int64(nmCapacity, 0, "initial number of buckets")
	loadFactor = flag.Float64(nmLoadFactor, 0, "max records per bucket before the table grows")
	metricAddr = flag.String(nmMetricAddr, "", "address to serve Prometheus /metrics on during the run, e.g. :9191")
	metricFile = flag.String(nmMetricFile, "", "file to write Prometheus metrics to after the run")
	logLevel   = flag.String(nmLogLevel, "", "log level: debug, info, warn, error")
	logFormat  = flag.String(nmLogFormat, "", "log format: text or json")
)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] <input file> <number of lines>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}

	if err = logutil.InitZapLogger(&cfg.Log); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		logutil.BgLogger().Error("benchmark failed", zap.Error(err))
		_ = logutil.BgLogger().Sync()
		os.Exit(1)
	}
	_ = logutil.BgLogger().Sync()
}

// loadConfig - Builds the run configuration from defaults, an optional config file, the flags given on the command
// line and finally the two positional arguments
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			return nil, err
		}
	}
	overrideConfig(cfg)

	args := flag.Args()
	if len(args) != 2 {
		return nil, errors.Errorf("expected 2 arguments, got %d", len(args))
	}
	cfg.Input = args[0]
	lines, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, errors.Errorf("number of lines must be an integer, got %q", args[1])
	}
	cfg.Lines = lines

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overrideConfig - Applies only the flags that were actually set so that values from a config file survive
func overrideConfig(cfg *config.Config) {
	actualFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		actualFlags[f.Name] = true
	})

	if actualFlags[nmReport] {
		cfg.Report = *report
	}
	if actualFlags[nmJSON] {
		cfg.JSON = *jsonPath
	}
	if actualFlags[nmSeed] {
		cfg.Seed = *seed
	}
	if actualFlags[nmHash] {
		cfg.Table.Hash = *hashName
	}
	if actualFlags[nmSizing] {
		cfg.Table.Sizing = *sizing
	}
	if actualFlags[nmCapacity] {
		cfg.Table.InitialCapacity = *capacity
	}
	if actualFlags[nmLoadFactor] {
		cfg.Table.LoadFactor = *loadFactor
	}
	if actualFlags[nmMetricAddr] {
		cfg.Metrics.Addr = *metricAddr
	}
	if actualFlags[nmMetricFile] {
		cfg.Metrics.File = *metricFile
	}
	if actualFlags[nmLogLevel] {
		cfg.Log.Level = *logLevel
	}
	if actualFlags[nmLogFormat] {
		cfg.Log.Format = *logFormat
	}
}

// newMetricsServer - Returns a server exposing the metrics gathered by g on /metrics
func newMetricsServer(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

// run - Loads the dataset, runs all phases and writes the summary to out and the configured report files
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := bench.NewMetrics(reg)

	if cfg.Metrics.Addr != "" {
		srv := newMetricsServer(cfg.Metrics.Addr, reg)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logutil.BgLogger().Warn("metrics server stopped", zap.String("addr", cfg.Metrics.Addr), zap.Error(err))
			}
		}()
		defer func() { _ = srv.Close() }()
	}

	records, stats, err := dataset.Load(cfg.Input, cfg.Lines)
	if err != nil {
		return err
	}
	logutil.BgLogger().Info("dataset loaded",
		zap.String("input", cfg.Input),
		zap.Int("records", len(records)),
		zap.Int("skipped", stats.Skipped()))

	opts := bench.Options{
		Table: bench.TableOptions{
			InitialCapacity: cfg.Table.InitialCapacity,
			LoadFactor:      cfg.Table.LoadFactor,
			Hash:            cfg.Table.Hash,
			Sizing:          cfg.Table.Sizing,
		},
		Seed:    cfg.Seed,
		Metrics: metrics,
	}
	result, err := bench.Run(ctx, records, opts)
	if err != nil {
		return err
	}

	if err = bench.WriteSummary(out, result); err != nil {
		return errors.Trace(err)
	}

	if cfg.Report != "" {
		if err = bench.AppendReport(cfg.Report, result); err != nil {
			return err
		}
	}

	if cfg.JSON != "" {
		f, err := os.Create(cfg.JSON)
		if err != nil {
			return errors.Annotatef(err, "create json summary %s", cfg.JSON)
		}
		err = bench.WriteJSON(f, result)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return errors.Annotatef(err, "write json summary %s", cfg.JSON)
		}
	}

	if cfg.Metrics.File != "" {
		if err = prometheus.WriteToTextfile(cfg.Metrics.File, reg); err != nil {
			return errors.Annotatef(err, "write metrics %s", cfg.Metrics.File)
		}
	}

	return nil
}
