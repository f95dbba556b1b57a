package cmd

import (
	"bytes"
	"context"
	"flag"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type sourcesCmd struct{}

func (*sourcesCmd) Name() string     { return "sources" }
func (*sourcesCmd) Synopsis() string { return "list the supported statement sources" }
func (*sourcesCmd) Usage() string {
	return `txconv sources

  Lists the supported statements with their command and default files.
`
}
func (*sourcesCmd) SetFlags(f *flag.FlagSet) {}

func (*sourcesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(sourcesMarkdown())
	return subcommands.ExitSuccess
}

func sourcesMarkdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sources")
	table := md.TableSet{
		Header: []string{"Command", "Source", "Default Input", "Default Output"},
	}
	for _, c := range commands() {
		table.Rows = append(table.Rows, []string{
			c.name,
			"`" + string(c.source) + "`",
			c.source.DefaultInput(),
			c.source.DefaultOutput(),
		})
	}
	doc.Table(table)
	return doc.String()
}
