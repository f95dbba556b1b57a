package txconv

import (
	"fmt"
	"time"

	"github.com/etnz/txconv/firstrade"
	"github.com/etnz/txconv/tdasg"
	"github.com/etnz/txconv/tdastmt"
)

// Defaults applied to every transaction: all supported brokers trade US
// securities.
const (
	DefaultExchange = "USX"
	DefaultCurrency = "USD"
)

// noteTimeLayout is the local time layout of the provenance note.
const noteTimeLayout = "2006-01-02T15:04:05"

// Normalizer maps statement records to StocksCafe transactions.
//
// Its zero value uses the StocksCafe schema, the default exchange and currency,
// and the wall clock.
type Normalizer struct {
	Schema   Schema
	Exchange string           // exchange code, DefaultExchange if empty
	Currency string           // ISO currency, DefaultCurrency if empty
	Now      func() time.Time // clock for provenance notes, time.Now if nil
}

func (n Normalizer) exchange() string {
	if n.Exchange == "" {
		return DefaultExchange
	}
	return n.Exchange
}

func (n Normalizer) currency() string {
	if n.Currency == "" {
		return DefaultCurrency
	}
	return n.Currency
}

// note returns the provenance note for a record converted from src.
func (n Normalizer) note(src Source) string {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return fmt.Sprintf("converted from %s (%s)", src, now().Local().Format(noteTimeLayout))
}

func (n Normalizer) transaction(op string) Transaction {
	return Transaction{Op: op, ExchangeCode: n.exchange(), Currency: n.currency()}
}

// FromFirstrade converts a Firstrade ledger entry.
//
// It returns false for entries that are neither buys nor sells.
func (n Normalizer) FromFirstrade(c firstrade.Confirmation) (Transaction, bool) {
	if !isTrade(c.Op) {
		return Transaction{}, false
	}
	tx := n.transaction(c.Op)
	tx.Date = c.Date
	amount := c.Amount
	tx.AmountAfterFee = &amount
	if c.Trade != nil {
		qty, price := c.Trade.Quantity, c.Trade.Price
		tx.Symbol = c.Trade.Symbol
		tx.Quantity = &qty
		tx.Price = &price
	}
	if n.Schema == StocksCafeSchema {
		tx.Notes = n.note(Firstrade)
	}
	return tx, true
}

// FromTDASg converts a TD Ameritrade Singapore confirmation.
//
// Confirmations are always buys or sells: it never drops a record.
func (n Normalizer) FromTDASg(c tdasg.Confirmation) (Transaction, bool) {
	tx := n.transaction(c.Op)
	tx.Date = c.Date
	tx.Symbol = c.Symbol
	qty, net := c.Quantity, c.NetAmount
	tx.Quantity = &qty
	price := c.Price
	if n.Schema == LegacySchema {
		price = c.Principal
	}
	tx.Price = &price
	tx.AmountAfterFee = &net
	tx.Notes = n.note(TDASg)
	return tx, true
}

// FromTDAStmt converts a TD Ameritrade statement line.
//
// It returns false for lines that are neither buys nor sells. The statement
// amount is not carried over: amount_after_fee is left empty.
func (n Normalizer) FromTDAStmt(t tdastmt.Transaction) (Transaction, bool) {
	if !isTrade(t.Op) {
		return Transaction{}, false
	}
	tx := n.transaction(t.Op)
	tx.Date = t.TradeDate
	tx.Symbol = t.Security
	if t.Quantity != nil {
		qty := *t.Quantity
		tx.Quantity = &qty
	}
	price := t.Price
	tx.Price = &price
	return tx, true
}
