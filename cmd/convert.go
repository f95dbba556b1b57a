package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/txconv"
	"github.com/etnz/txconv/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// convertCmd converts the statement of a single source.
type convertCmd struct {
	name   string
	source txconv.Source

	input   string
	output  string
	schema  string
	format  string
	summary bool
}

func (c *convertCmd) Name() string { return c.name }
func (c *convertCmd) Synopsis() string {
	return fmt.Sprintf("convert a %s statement into StocksCafe transactions", c.source)
}
func (c *convertCmd) Usage() string {
	return fmt.Sprintf(`txconv %s [-i <statement>] [-o <output>] [-schema stockscafe|legacy] [-format csv|jsonl] [-summary]

  Converts the %s statement (default %q) into a StocksCafe import
  file (default %q). Buys and sells are kept, anything else is dropped.
  Statements saved as PDF are read from their text.

  Defaults can be changed in the configuration file or TXCONV_* environment
  variables.
`, c.name, c.source, c.source.DefaultInput(), c.source.DefaultOutput())
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Statement file to read.")
	f.StringVar(&c.output, "o", "", "File to write.")
	f.StringVar(&c.schema, "schema", "", "Column mapping: 'stockscafe' or 'legacy'.")
	f.StringVar(&c.format, "format", "", "Output format: 'csv' or 'jsonl'.")
	f.BoolVar(&c.summary, "summary", false, "Print a summary of the conversion.")
}

// options returns the conversion options, flags overriding the configuration.
func (c *convertCmd) options() (txconv.Options, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return txconv.Options{}, err
	}
	if c.schema != "" {
		cfg.Schema = c.schema
	}
	if c.format != "" {
		cfg.Format = c.format
	}
	if err := cfg.Validate(); err != nil {
		return txconv.Options{}, err
	}
	opts, err := cfg.Options(c.source)
	if err != nil {
		return txconv.Options{}, err
	}
	if c.input != "" {
		opts.Input = c.input
	}
	if c.output != "" {
		opts.Output = c.output
	}
	return opts, nil
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Info().Str("source", string(c.source)).Stringer("schema", opts.Normalizer.Schema).Msg("active schema")

	report, err := txconv.ConvertFile(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s statement: %v\n", c.source, err)
		return subcommands.ExitFailure
	}

	if c.summary {
		printMarkdown(renderer.SummaryMarkdown(report))
		return subcommands.ExitSuccess
	}
	fmt.Printf("Converted %d of %d records into %s\n", len(report.Transactions), report.Records, report.Output)
	return subcommands.ExitSuccess
}
