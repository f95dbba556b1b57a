package txconv

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// prices and amounts are written as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes the transaction fields in the StocksCafe column order,
// omitting empty optional fields.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("op", t.Op)
	w.Append("exchange_code", t.ExchangeCode)
	w.Optional("symbol", t.Symbol)
	w.Optional("qty", t.Quantity)
	w.Append("currency", t.Currency)
	w.Optional("price", t.Price)
	w.Append("date", t.Date)
	w.Optional("amount_after_fee", t.AmountAfterFee)
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// EncodeJSONL writes one JSON object per transaction, one per line.
func EncodeJSONL(w io.Writer, txs []Transaction) error {
	bw := bufio.NewWriter(w)
	for i, tx := range txs {
		b, err := tx.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode transaction %d: %w", i, err)
		}
		bw.Write(b)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
