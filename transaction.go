package txconv

import (
	"github.com/etnz/txconv/date"
	"github.com/shopspring/decimal"
)

// Operations known to StocksCafe.
const (
	OpBuy  = "Buy"
	OpSell = "Sell"
	OpFees = "Fees"
)

// Transaction is a StocksCafe transaction.
//
// Fields are declared in the StocksCafe import column order. Optional values
// are pointers, nil values are written as empty columns.
type Transaction struct {
	Op             string           `csv:"op"`            // "Buy", "Sell", "Fees"
	ExchangeCode   string           `csv:"exchange_code"` // i.e. SGX or HKEX
	Symbol         string           `csv:"symbol"`
	Quantity       *int64           `csv:"qty"`              // units purchased or sold
	Currency       string           `csv:"currency"`         // the currency this stock trades in
	Price          *decimal.Decimal `csv:"price"`            // price paid or received
	Date           date.Date        `csv:"date"`             // written YYYY-MM-DD
	AmountAfterFee *decimal.Decimal `csv:"amount_after_fee"` // total after fees
	Notes          string           `csv:"notes"`
}

// isTrade reports whether op is a buy or a sell.
func isTrade(op string) bool { return op == OpBuy || op == OpSell }
