// Package tdastmt parses the transaction lines of TD Ameritrade account
// statements, as copied from the statement document.
//
// A statement line looks like:
//
//	01/04/21 01/06/21 Cash Buy - Securities Purchased APPLE INC COM AAPL 10 130.00 (1,300.00) 8,700.00
//
// Lines may wrap, they are reassembled before parsing.
package tdastmt

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"

	"github.com/etnz/txconv/date"
	"github.com/etnz/txconv/lines"
	"github.com/shopspring/decimal"
)

// none is the placeholder used by statements for a missing security or quantity.
const none = "-"

// Transaction is a single statement line.
type Transaction struct {
	TradeDate   date.Date
	SettleDate  date.Date
	AccountType string
	Op          string // "Buy", "Sell", "Div/Int", "Journal"... empty when absent.
	Activity    string
	Description string

	Fee      *Charge    // nil when the line has no fee.
	Payable  *date.Date // nil when the line has no payable date.
	Dividend *Charge    // nil when the line has no dividend.

	Security string // ticker, or CUSIP when the statement has no ticker. Empty when the line has no security.
	Quantity *int64 // negative when securities leave the account. nil when the line has no quantity.

	Price   decimal.Decimal
	Amount  decimal.Decimal // negative for debits.
	Balance decimal.Decimal
}

// Charge is a typed amount, like a "Regulatory Fee 0.02" or a "Qualified Dividends 1.20".
type Charge struct {
	Type   string
	Amount decimal.Decimal
}

// ParseLine parses a single logical line.
//
// It returns false if the line does not match the statement line layout. An
// error is returned when the line matches but one of its values cannot be read.
func ParseLine(line string) (Transaction, bool, error) {
	f, ok := match(line)
	if !ok {
		return Transaction{}, false, nil
	}

	tx := Transaction{
		AccountType: f.accType,
		Op:          f.op,
		Activity:    f.activity,
		Description: f.description,
	}
	wrap := func(err error) error { return fmt.Errorf("tdastmt line %q: %w", line, err) }

	var err error
	if tx.TradeDate, err = date.ParseMDY(f.tradeDate); err != nil {
		return Transaction{}, false, wrap(err)
	}
	if tx.SettleDate, err = date.ParseMDY(f.settleDate); err != nil {
		return Transaction{}, false, wrap(err)
	}
	if f.feeType != "" {
		amount, err := parseAmount(f.fee, false)
		if err != nil {
			return Transaction{}, false, wrap(err)
		}
		tx.Fee = &Charge{Type: f.feeType, Amount: amount}
	}
	if f.payable != "" {
		payable, err := date.ParseMDY(f.payable)
		if err != nil {
			return Transaction{}, false, wrap(err)
		}
		tx.Payable = &payable
	}
	if f.dividendType != "" {
		amount, err := parseAmount(f.dividends, false)
		if err != nil {
			return Transaction{}, false, wrap(err)
		}
		tx.Dividend = &Charge{Type: f.dividendType, Amount: amount}
	}
	if f.security != none {
		tx.Security = f.security
	}
	if f.qty != none {
		qty, err := parseQuantity(f.qty)
		if err != nil {
			return Transaction{}, false, wrap(err)
		}
		tx.Quantity = &qty
	}
	if tx.Price, err = parseAmount(f.price, false); err != nil {
		return Transaction{}, false, wrap(err)
	}
	if tx.Amount, err = parseAmount(f.amount, true); err != nil {
		return Transaction{}, false, wrap(err)
	}
	if tx.Balance, err = parseAmount(f.balance, false); err != nil {
		return Transaction{}, false, wrap(err)
	}
	return tx, true, nil
}

// parseQuantity reads quantities like "1,200" or "123-" (that is -123).
func parseQuantity(s string) (int64, error) {
	qty, err := strconv.ParseInt(strings.NewReplacer(",", "", "-", "").Replace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		qty = -qty
	}
	return qty, nil
}

// parseAmount reads amounts like "1,300.00". When parens is true "(1,300.00)" is read as -1300.
func parseAmount(s string, parens bool) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ',' || r == '(' || r == ')' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if parens && strings.HasPrefix(s, "(") {
		d = d.Neg()
	}
	return d, nil
}

// Load parses all the transactions found in the physical lines of a statement.
//
// Lines that are not transactions are skipped. The sequence stops after the
// first error.
func Load(physical iter.Seq[string]) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		for line := range lines.Reassemble(physical) {
			tx, ok, err := ParseLine(line)
			if err != nil {
				yield(Transaction{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}
