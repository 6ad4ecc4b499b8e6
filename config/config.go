package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/logutil"
	"github.com/pingcap/errors"
)

// DefaultReportFile - File the timing rows are appended to unless configured otherwise
const DefaultReportFile = "analysis.txt"

// Config - Contains the configuration of a benchmark run
type Config struct {
	// Input is the CSV dataset to load
	Input string `toml:"input" json:"input"`
	// Lines is the max number of records to load, 0 loads all
	Lines int `toml:"lines" json:"lines"`
	// Report is the CSV file timing rows are appended to, empty disables it
	Report string `toml:"report" json:"report"`
	// JSON is a file to write a JSON summary to, empty disables it
	JSON string `toml:"json" json:"json"`
	// Seed is the seed of the shuffled ordering, 0 picks a time based seed
	Seed    int64             `toml:"seed" json:"seed"`
	Table   Table             `toml:"table" json:"table"`
	Metrics Metrics           `toml:"metrics" json:"metrics"`
	Log     logutil.LogConfig `toml:"log" json:"log"`
}

// Metrics - Where the Prometheus metrics of a run are exposed
type Metrics struct {
	// Addr is a listen address serving /metrics while the run is going on, empty disables it
	Addr string `toml:"addr" json:"addr"`
	// File is a file the metrics are written to in text format after the run, empty disables it
	File string `toml:"file" json:"file"`
}

// Table - Configuration of the chain hash maps built in each phase
type Table struct {
	InitialCapacity int64   `toml:"initial-capacity" json:"initial-capacity"`
	LoadFactor      float64 `toml:"load-factor" json:"load-factor"`
	Hash            string  `toml:"hash" json:"hash"`
	Sizing          string  `toml:"sizing" json:"sizing"`
}

// NewConfig - Returns a Config with default values
func NewConfig() *Config {
	return &Config{
		Report: DefaultReportFile,
		Table: Table{
			InitialCapacity: conf.DefaultInitialCapacity,
			LoadFactor:      conf.DefaultLoadFactor,
			Hash:            hash.CRC32,
		},
		Log: *logutil.NewLogConfig("", ""),
	}
}

// Load - Loads the TOML file at path on top of the values already in c
func (c *Config) Load(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Annotatef(err, "decode config file %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Errorf("config file %s contained unknown configuration options: %s", path, strings.Join(keys, ", "))
	}

	return nil
}

// Validate - Checks that the configuration can be used for a run
func (c *Config) Validate() error {
	if c.Lines < 0 {
		return errors.Errorf("lines must be 0 (all) or a positive number, got %d", c.Lines)
	}
	if c.Table.InitialCapacity <= 0 {
		return errors.Errorf("table initial-capacity must be higher than 0, got %d", c.Table.InitialCapacity)
	}
	if c.Table.LoadFactor <= 0 || c.Table.LoadFactor > conf.MaxLoadFactor {
		return errors.Errorf("table load-factor must be in (0, %.1f], got %v", conf.MaxLoadFactor, c.Table.LoadFactor)
	}
	if _, err := hash.NewHashAlgorithm(c.Table.Hash, c.Table.Sizing, c.Table.InitialCapacity); err != nil {
		return errors.Annotate(err, "table hash")
	}
	if err := c.Log.Validate(); err != nil {
		return errors.Annotate(err, "log")
	}

	return nil
}
