package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/txconv"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the outcome of a conversion.
func SummaryMarkdown(r *txconv.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Conversion of %s", r.Source))
	doc.PlainText(fmt.Sprintf("Run %s using the %s schema.", r.ID, r.Schema))
	if r.Schema == txconv.LegacySchema {
		doc.PlainText("The price column holds the principal of TDA SG confirmations.")
	}

	doc.H2("Records")
	rows := [][]string{
		{"Parsed", strconv.Itoa(r.Records)},
		{"Converted", strconv.Itoa(len(r.Transactions))},
		{"Dropped", strconv.Itoa(r.Dropped())},
	}
	if r.Input != "" {
		rows = append([][]string{{"Input", r.Input}}, rows...)
	}
	if r.Output != "" {
		rows = append(rows, []string{"Output", r.Output})
	}
	doc.Table(md.TableSet{
		Header: []string{"", md.Bold(string(r.Source))},
		Rows:   rows,
	})

	if totals := r.Totals(); len(totals) > 0 {
		doc.H2("Operations")
		table := md.TableSet{
			Header: []string{"Operation", "Count", "Quantity", "Amount"},
		}
		for _, t := range totals {
			table.Rows = append(table.Rows, []string{
				t.Op,
				strconv.Itoa(t.Count),
				strconv.FormatInt(t.Quantity, 10),
				t.Amount.String(),
			})
		}
		doc.Table(table)

		doc.H2("Transactions")
		var transactions []string
		for _, tx := range r.Transactions {
			transactions = append(transactions, Transaction(tx))
		}
		doc.OrderedList(transactions...)
	}

	return doc.String()
}
