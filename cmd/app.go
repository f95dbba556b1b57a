// Package cmd implements the CLI application converting brokerage statements.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/txconv"
	"github.com/etnz/txconv/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands() {
		c.Register(cmd, "converters")
	}
	c.Register(&sourcesCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// commands returns the conversion commands, one per source.
func commands() []*convertCmd {
	return []*convertCmd{
		{name: "firstrade", source: txconv.Firstrade},
		{name: "tda-sg", source: txconv.TDASg},
		{name: "tda-stmt", source: txconv.TDAStmt},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to "+config.DefaultFile+" if it exists)")
var envFile = flag.String("env", ".env", "Path to an optional file of TXCONV_* environment variables")
var Verbose = flag.Bool("v", false, "Log debug information, i.e. skipped statement lines")

// SetupLogging configures the global logger, to be called once flags are parsed.
func SetupLogging() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// LoadConfig returns the application configuration.
func LoadConfig() (*config.Config, error) {
	if err := config.LoadEnv(*envFile); err != nil {
		return nil, err
	}
	return config.Load(*configFile)
}

// printMarkdown renders markdown for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
