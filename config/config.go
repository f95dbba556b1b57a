// Package config loads the txconv settings.
//
// Settings come from, in increasing priority: defaults, a YAML file
// (txconv.yaml), and TXCONV_* environment variables, possibly read from a .env
// file. Command line flags are applied on top by the commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/txconv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "txconv.yaml"

// Environment variables overriding the configuration file.
const (
	EnvSchema   = "TXCONV_SCHEMA"
	EnvExchange = "TXCONV_EXCHANGE"
	EnvCurrency = "TXCONV_CURRENCY"
	EnvFormat   = "TXCONV_FORMAT"
)

// Config represents the conversion settings.
type Config struct {
	Schema   string                  `yaml:"schema"`   // "stockscafe" or "legacy"
	Exchange string                  `yaml:"exchange"` // exchange code written in every transaction
	Currency string                  `yaml:"currency"` // ISO currency written in every transaction
	Format   string                  `yaml:"format"`   // "csv" or "jsonl"
	Sources  map[string]SourceConfig `yaml:"sources,omitempty"`
}

// SourceConfig overrides the default paths of a source.
type SourceConfig struct {
	Input  string `yaml:"input,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Schema:   txconv.StocksCafeSchema.String(),
		Exchange: txconv.DefaultExchange,
		Currency: txconv.DefaultCurrency,
		Format:   string(txconv.CSV),
	}
}

// LoadFromFile loads a YAML configuration file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Load returns the configuration from path, or from DefaultFile if path is
// empty, with the environment applied. A missing DefaultFile is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	file := path
	if file == "" {
		file = DefaultFile
	}
	loaded, err := LoadFromFile(file)
	switch {
	case err == nil:
		cfg = loaded
	case path == "" && errors.Is(err, fs.ErrNotExist):
		// no configuration file
	default:
		return nil, err
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// LoadEnv reads environment variables from .env files, ".env" if none is
// given. Variables already set are kept, missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %q: %w", f, err)
		}
	}
	return nil
}

// sourceEnv returns the environment variable prefix of a source,
// i.e. TXCONV_TDA_STMT.
func sourceEnv(src txconv.Source) string {
	return "TXCONV_" + strings.ToUpper(string(src))
}

// ApplyEnv overrides the configuration with the TXCONV_* environment variables.
func (c *Config) ApplyEnv() {
	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	set(&c.Schema, EnvSchema)
	set(&c.Exchange, EnvExchange)
	set(&c.Currency, EnvCurrency)
	set(&c.Format, EnvFormat)

	for _, src := range txconv.Sources() {
		sc := c.Sources[string(src)]
		set(&sc.Input, sourceEnv(src)+"_INPUT")
		set(&sc.Output, sourceEnv(src)+"_OUTPUT")
		if sc != (SourceConfig{}) {
			if c.Sources == nil {
				c.Sources = make(map[string]SourceConfig)
			}
			c.Sources[string(src)] = sc
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := txconv.ParseSchema(c.Schema); err != nil {
		return err
	}
	if _, err := txconv.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Exchange == "" {
		return fmt.Errorf("exchange is required")
	}
	if c.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if !txconv.ValidCurrency(c.Currency) {
		return fmt.Errorf("unknown currency: %q", c.Currency)
	}
	for name := range c.Sources {
		if _, err := txconv.ParseSource(name); err != nil {
			return err
		}
	}
	return nil
}

// Normalizer returns the normalizer configured by c.
func (c *Config) Normalizer() (txconv.Normalizer, error) {
	schema, err := txconv.ParseSchema(c.Schema)
	if err != nil {
		return txconv.Normalizer{}, err
	}
	return txconv.Normalizer{Schema: schema, Exchange: c.Exchange, Currency: c.Currency}, nil
}

// Options returns the conversion options of src.
func (c *Config) Options(src txconv.Source) (txconv.Options, error) {
	n, err := c.Normalizer()
	if err != nil {
		return txconv.Options{}, err
	}
	format, err := txconv.ParseFormat(c.Format)
	if err != nil {
		return txconv.Options{}, err
	}
	sc := c.Sources[string(src)]
	return txconv.Options{
		Source:     src,
		Input:      sc.Input,
		Output:     sc.Output,
		Format:     format,
		Normalizer: n,
	}, nil
}
