package txconv

import (
	"time"

	"github.com/etnz/txconv/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func qty(q int64) *int64 { return &q }

// fixedClock returns a clock stuck at 2024-05-06T07:08:09 local time.
func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local) }
}

// cmpOptions compare decimals by value.
var cmpOptions = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.AllowUnexported(date.Date{}),
}

// sample statement lines, one per source.
const (
	firstradeBuy     = "01/02/2021\tBought\t10\tAPPLE INC\tAAPL\tCash\t150.00\t1500.00 USD"
	firstradeSell    = "01/05/2021\tSold\t-4\tTESLA INC\tTSLA\tCash\t800.00\t3200.00 USD"
	firstradeDeposit = "01/03/2021\tDeposit\t\tWIRE FUNDS RECEIVED\t\tCash\t\t10000.00 USD"
	tdasgBuy         = "01/02/2021\tT123\tAAPL\t10\tBought\t5.00\t150.00\t1500.00\t1495.00"
	tdasgSell        = "02/03/2021\tT124\tMSFT\t1,000\tSold\t5.00\t1,234.56\t1,234,560.00\t1,234,555.00"
	tdastmtBuy       = "01/04/21 01/06/21 Cash Buy - Securities Purchased APPLE INC COM AAPL 10 130.00 (1,300.00) 8,700.00"
	tdastmtSell      = "02/10/21 02/12/21 Cash Sell - Securities Sold TESLA INC COM Regulatory Fee 0.02 TSLA 5- 800.00 3,999.98 12,699.98"
	tdastmtDeposit   = "01/02/21 01/02/21 Cash - Funds Deposited Wire Transfer Received - - 0.00 10,000.00 10,000.00"
)
