// Package tdasg parses trade confirmations copied from the TD Ameritrade
// Singapore web site.
//
// Each physical line is a complete, tab separated confirmation:
//
//	Date	Transaction Id	Symbol	Qty	B/S	Commission	Price	Principal	Net Amt
package tdasg

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/etnz/txconv/date"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const numFields = 9

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Confirmation is a single trade confirmation.
type Confirmation struct {
	Date       date.Date
	TxID       string
	Symbol     string
	Quantity   int64
	Op         string // "Buy" or "Sell"
	Commission decimal.Decimal
	Price      decimal.Decimal
	Principal  decimal.Decimal // Quantity times Price, before commission.
	NetAmount  decimal.Decimal
}

// ParseLine parses a single line of confirmation.
//
// It returns false if the line does not start with a "mm/dd/yyyy" date.
func ParseLine(line string) (Confirmation, bool, error) {
	tokens := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if !datePattern.MatchString(tokens[0]) {
		return Confirmation{}, false, nil
	}
	if len(tokens) < numFields {
		log.Debug().Int("fields", len(tokens)).Str("line", line).Msg("tdasg: skipping line with missing fields")
		return Confirmation{}, false, nil
	}

	on, err := date.ParseMDY(tokens[0])
	if err != nil {
		return Confirmation{}, false, fmt.Errorf("tdasg line %q: %w", line, err)
	}
	qty, err := strconv.ParseInt(stripCommas(tokens[3]), 10, 64)
	if err != nil {
		return Confirmation{}, false, fmt.Errorf("tdasg line %q: invalid quantity %q: %w", line, tokens[3], err)
	}

	var amounts [4]decimal.Decimal
	for i, token := range tokens[5:numFields] {
		amounts[i], err = decimal.NewFromString(stripCommas(token))
		if err != nil {
			return Confirmation{}, false, fmt.Errorf("tdasg line %q: invalid number %q: %w", line, token, err)
		}
	}

	op := "Sell"
	if tokens[4] == "Bought" {
		op = "Buy"
	}

	return Confirmation{
		Date:       on,
		TxID:       tokens[1],
		Symbol:     tokens[2],
		Quantity:   qty,
		Op:         op,
		Commission: amounts[0],
		Price:      amounts[1],
		Principal:  amounts[2],
		NetAmount:  amounts[3],
	}, true, nil
}

// stripCommas removes thousands separators and surrounding spaces.
func stripCommas(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}

// Load parses all the confirmations found in lines.
//
// Lines that are not confirmations are skipped. The sequence stops after the
// first error.
func Load(lines iter.Seq[string]) iter.Seq2[Confirmation, error] {
	return func(yield func(Confirmation, error) bool) {
		for line := range lines {
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
