package txconv

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/etnz/txconv/firstrade"
	"github.com/etnz/txconv/lines"
	"github.com/etnz/txconv/tdasg"
	"github.com/etnz/txconv/tdastmt"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Format is an output file format.
type Format string

const (
	CSV   Format = "csv"   // StocksCafe import file
	JSONL Format = "jsonl" // one JSON object per line
)

// ParseFormat parses an output format name, the empty string is CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case CSV, "":
		return CSV, nil
	case JSONL:
		return JSONL, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", s)
	}
}

// Encode writes txs to w in format f.
//
// CSV output always has a header, even without transactions.
func (f Format) Encode(w io.Writer, txs []Transaction) error {
	switch f {
	case CSV, "":
		return EncodeCSV(w, txs, Fields[Transaction]()...)
	case JSONL:
		return EncodeJSONL(w, txs)
	default:
		return fmt.Errorf("unknown output format: %q", f)
	}
}

// Report is the outcome of a conversion.
type Report struct {
	ID           string // unique run identifier
	Source       Source
	Schema       Schema
	Input        string // input path, if read from a file
	Output       string // output path, if written to a file
	Records      int    // statement records parsed
	Transactions []Transaction
}

// Dropped returns the number of parsed records that were not converted.
func (r *Report) Dropped() int { return r.Records - len(r.Transactions) }

// OpTotal sums up the transactions of a single operation.
type OpTotal struct {
	Op       string
	Count    int
	Quantity int64 // sum of absolute quantities
	Amount   Money // sum of absolute amounts after fee, or quantity times price when absent
}

// Totals returns one total per operation, in order of first appearance.
func (r *Report) Totals() []OpTotal {
	var totals []OpTotal
	for _, tx := range r.Transactions {
		i := slices.IndexFunc(totals, func(t OpTotal) bool { return t.Op == tx.Op })
		if i < 0 {
			totals = append(totals, OpTotal{Op: tx.Op, Amount: M(decimal.Zero, tx.Currency)})
			i = len(totals) - 1
		}
		t := &totals[i]
		t.Count++
		var qty int64
		if tx.Quantity != nil {
			qty = max(*tx.Quantity, -*tx.Quantity)
			t.Quantity += qty
		}
		switch {
		case tx.AmountAfterFee != nil:
			t.Amount = t.Amount.Add(M(*tx.AmountAfterFee, tx.Currency).Abs())
		case tx.Price != nil:
			t.Amount = t.Amount.Add(M(*tx.Price, tx.Currency).Mul(qty).Abs())
		}
	}
	return totals
}

// Convert reads the statement physical lines of src and converts them.
//
// Lines that are not statement entries are skipped. The first entry that
// cannot be read aborts the conversion.
func (n Normalizer) Convert(src Source, physical iter.Seq[string]) (*Report, error) {
	r := &Report{ID: ulid.Make().String(), Source: src, Schema: n.Schema}
	log.Info().Str("run", r.ID).Str("source", string(src)).Stringer("schema", n.Schema).Msg("converting")

	var err error
	switch src {
	case Firstrade:
		err = collect(r, firstrade.Load(physical), n.FromFirstrade)
	case TDASg:
		err = collect(r, tdasg.Load(physical), n.FromTDASg)
	case TDAStmt:
		err = collect(r, tdastmt.Load(physical), n.FromTDAStmt)
	default:
		return nil, fmt.Errorf("unknown source: %q", src)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s: %w", src, err)
	}

	log.Info().Str("run", r.ID).
		Int("records", r.Records).
		Int("transactions", len(r.Transactions)).
		Int("dropped", r.Dropped()).
		Msg("converted")
	return r, nil
}

func collect[R any](r *Report, records iter.Seq2[R, error], normalize func(R) (Transaction, bool)) error {
	for rec, err := range records {
		if err != nil {
			return err
		}
		r.Records++
		if tx, ok := normalize(rec); ok {
			r.Transactions = append(r.Transactions, tx)
		}
	}
	return nil
}

// Options configures ConvertFile.
type Options struct {
	Source     Source
	Input      string // Source.DefaultInput() if empty
	Output     string // Source.DefaultOutput() if empty
	Format     Format // CSV if empty
	Normalizer Normalizer
}

// ConvertFile converts the statement file Input into Output.
//
// The whole input is read in memory. Output is only created once the
// conversion succeeded.
func ConvertFile(opts Options) (*Report, error) {
	input, output := opts.Input, opts.Output
	if input == "" {
		input = opts.Source.DefaultInput()
	}
	if output == "" {
		output = opts.Source.DefaultOutput()
	}

	physical, err := lines.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("cannot read statement: %w", err)
	}
	r, err := opts.Normalizer.Convert(opts.Source, slices.Values(physical))
	if err != nil {
		return nil, err
	}
	r.Input, r.Output = input, output

	f, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("cannot create output: %w", err)
	}
	if err := opts.Format.Encode(f, r.Transactions); err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot write %q: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("cannot write %q: %w", output, err)
	}
	log.Debug().Str("run", r.ID).Str("output", output).Msg("written")
	return r, nil
}
