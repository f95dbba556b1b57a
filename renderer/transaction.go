package renderer

import (
	"fmt"

	"github.com/etnz/txconv"
)

// Transaction renders a transaction to a string.
func Transaction(tx txconv.Transaction) string {
	var qty int64
	if tx.Quantity != nil {
		qty = max(*tx.Quantity, -*tx.Quantity)
	}
	price := "?"
	if tx.Price != nil {
		price = txconv.M(*tx.Price, tx.Currency).String()
	}
	switch tx.Op {
	case txconv.OpBuy:
		return fmt.Sprintf("%s: bought %d %s at %s", tx.Date, qty, tx.Symbol, price)
	case txconv.OpSell:
		return fmt.Sprintf("%s: sold %d %s at %s", tx.Date, qty, tx.Symbol, price)
	default:
		return fmt.Sprintf("%s: %s %s", tx.Date, tx.Op, tx.Symbol)
	}
}
