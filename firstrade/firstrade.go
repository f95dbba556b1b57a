// Package firstrade parses Firstrade account history exports.
//
// The export is a tab separated ledger: one entry per date line, with
// descriptions sometimes wrapping on the following lines.
package firstrade

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/etnz/txconv/date"
	"github.com/etnz/txconv/lines"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// numFields is the number of tab separated fields of a ledger entry.
const numFields = 8

// Confirmation is a single entry of the Firstrade ledger.
type Confirmation struct {
	Date        date.Date
	Op          string // "Buy", "Sell", or the ledger label verbatim ("Deposit", "Interest"...)
	Description string
	AccountType string
	Amount      decimal.Decimal // always positive
	// Trade is nil for entries that do not move securities (cash deposits, interests...).
	Trade *Trade
}

// Trade holds the security side of a buy or a sell.
type Trade struct {
	Quantity int64 // always positive
	Symbol   string
	Price    decimal.Decimal
}

var ops = map[string]string{
	"Bought": "Buy",
	"Sold":   "Sell",
}

// ParseLine parses a single logical line.
//
// It returns false if the line is not a ledger entry. An error is returned when
// the line is an entry but one of its values cannot be read.
func ParseLine(line string) (Confirmation, bool, error) {
	if !lines.StartsWithDate(line) {
		return Confirmation{}, false, nil
	}

	tokens := strings.Split(line, "\t")
	if len(tokens) != numFields {
		log.Debug().Int("fields", len(tokens)).Str("line", line).Msg("firstrade: skipping line with unexpected field count")
		return Confirmation{}, false, nil
	}

	on, err := date.ParseMDY(tokens[0])
	if err != nil {
		return Confirmation{}, false, fmt.Errorf("firstrade line %q: %w", line, err)
	}

	op, ok := ops[tokens[1]]
	if !ok {
		op = tokens[1]
	}

	var trade *Trade
	if tokens[2] != "" {
		qty, err := strconv.ParseInt(tokens[2], 10, 64)
		if err != nil {
			return Confirmation{}, false, fmt.Errorf("firstrade line %q: invalid quantity %q: %w", line, tokens[2], err)
		}
		price, err := decimal.NewFromString(tokens[6])
		if err != nil {
			return Confirmation{}, false, fmt.Errorf("firstrade line %q: invalid price %q: %w", line, tokens[6], err)
		}
		if qty < 0 {
			qty = -qty
		}
		trade = &Trade{Quantity: qty, Symbol: tokens[4], Price: price}
	}

	// the amount is followed by a currency indicator ("1500.00 USD").
	var amountText string
	if fields := strings.Fields(tokens[7]); len(fields) > 0 {
		amountText = fields[0]
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return Confirmation{}, false, fmt.Errorf("firstrade line %q: invalid amount %q: %w", line, tokens[7], err)
	}

	return Confirmation{
		Date:        on,
		Op:          op,
		Description: tokens[3],
		AccountType: tokens[5],
		Amount:      amount.Abs(),
		Trade:       trade,
	}, true, nil
}

// Load parses all the ledger entries found in the physical lines of an export.
//
// Lines that are not entries are skipped. The sequence stops after the first
// error.
func Load(physical iter.Seq[string]) iter.Seq2[Confirmation, error] {
	return func(yield func(Confirmation, error) bool) {
		for line := range lines.Reassemble(physical) {
			c, ok, err := ParseLine(line)
			if err != nil {
				yield(Confirmation{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}
