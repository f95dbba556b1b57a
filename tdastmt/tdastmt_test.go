package tdastmt

import (
	"slices"
	"strings"
	"testing"

	"github.com/etnz/txconv/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func qty(q int64) *int64        { return &q }

const (
	buyLine      = "01/04/21 01/06/21 Cash Buy - Securities Purchased APPLE INC COM AAPL 10 130.00 (1,300.00) 8,700.00"
	sellLine     = "02/10/21 02/12/21 Cash Sell - Securities Sold TESLA INC COM Regulatory Fee 0.02 TSLA 5- 800.00 3,999.98 12,699.98"
	dividendLine = "03/15/21 03/15/21 Cash Div/Int - Income Qualified Dividend APPLE INC COM Payable: 03/15/21 Qualified Dividends 2.05 AAPL - 0.00 2.05 12,702.03"
	depositLine  = "01/02/21 01/02/21 Cash - Funds Deposited Wire Transfer Received - - 0.00 10,000.00 10,000.00"
	cusipLine    = "03/20/21 03/22/21 Margin Buy - Securities Purchased ISHARES CORE S&P 464287200 1,200 50.00 (60,000.00) 1 000.00"
)

func TestParseLine(t *testing.T) {
	payable := date.New(2021, 3, 15)
	tests := []struct {
		name string
		line string
		want Transaction
	}{
		{
			name: "buy",
			line: buyLine,
			want: Transaction{
				TradeDate: date.New(2021, 1, 4), SettleDate: date.New(2021, 1, 6),
				AccountType: "Cash", Op: "Buy", Activity: "Securities Purchased", Description: "APPLE INC COM",
				Security: "AAPL", Quantity: qty(10),
				Price: dec("130"), Amount: dec("-1300"), Balance: dec("8700"),
			},
		},
		{
			name: "sell with fee and trailing minus quantity",
			line: sellLine,
			want: Transaction{
				TradeDate: date.New(2021, 2, 10), SettleDate: date.New(2021, 2, 12),
				AccountType: "Cash", Op: "Sell", Activity: "Securities Sold", Description: "TESLA INC COM",
				Fee:      &Charge{Type: "Regulatory", Amount: dec("0.02")},
				Security: "TSLA", Quantity: qty(-5),
				Price: dec("800"), Amount: dec("3999.98"), Balance: dec("12699.98"),
			},
		},
		{
			name: "dividend",
			line: dividendLine,
			want: Transaction{
				TradeDate: date.New(2021, 3, 15), SettleDate: date.New(2021, 3, 15),
				AccountType: "Cash", Op: "Div/Int", Activity: "Income Qualified", Description: "Dividend APPLE INC COM",
				Payable:  &payable,
				Dividend: &Charge{Type: "Qualified", Amount: dec("2.05")},
				Security: "AAPL",
				Price:    dec("0"), Amount: dec("2.05"), Balance: dec("12702.03"),
			},
		},
		{
			name: "deposit without op nor security",
			line: depositLine,
			want: Transaction{
				TradeDate: date.New(2021, 1, 2), SettleDate: date.New(2021, 1, 2),
				AccountType: "Cash", Activity: "Funds Deposited", Description: "Wire Transfer Received",
				Price: dec("0"), Amount: dec("10000"), Balance: dec("10000"),
			},
		},
		{
			name: "cusip and spaced balance",
			line: cusipLine,
			want: Transaction{
				TradeDate: date.New(2021, 3, 20), SettleDate: date.New(2021, 3, 22),
				AccountType: "Margin", Op: "Buy", Activity: "Securities Purchased", Description: "ISHARES CORE S&P",
				Security: "464287200", Quantity: qty(1200),
				Price: dec("50"), Amount: dec("-60000"), Balance: dec("1000"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine() unexpected error: %v", err)
			}
			if !ok {
				t.Fatalf("ParseLine() did not match")
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
				t.Errorf("ParseLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLineSkipped(t *testing.T) {
	for _, line := range []string{
		"",
		"Trade Date Settle Date Acct Type Transaction Description Symbol/CUSIP Quantity Price Amount Balance",
		"01/04/21 01/06/21 Cash Buy - Securities Purchased APPLE INC COM AAPL 10 130.00",
		// a quantity without security
		"01/04/21 01/06/21 Cash Buy - Securities Purchased APPLE INC COM - 10 130.00 (1,300.00) 8,700.00",
	} {
		_, ok, err := ParseLine(line)
		if err != nil {
			t.Errorf("ParseLine(%q) unexpected error: %v", line, err)
		}
		if ok {
			t.Errorf("ParseLine(%q) should not match", line)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		strings.Replace(buyLine, "01/04/21", "13/45/21", 1),
		strings.Replace(buyLine, "130.00", "1.3.0", 1),
	} {
		if _, _, err := ParseLine(line); err == nil {
			t.Errorf("ParseLine(%q) expected an error", line)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"123", 123},
		{"123-", -123},
		{"-123", -123},
		{"1,200", 1200},
		{"1,200-", -1200},
	}
	for _, tt := range tests {
		got, err := parseQuantity(tt.input)
		if err != nil {
			t.Errorf("parseQuantity(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseQuantity(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input  string
		parens bool
		want   string
	}{
		{"45.00", true, "45"},
		{"(45.00)", true, "-45"},
		{"(45.00)", false, "45"},
		{"1,234.56", false, "1234.56"},
		{"12 345.67", false, "12345.67"},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.input, tt.parens)
		if err != nil {
			t.Errorf("parseAmount(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(dec(tt.want)) {
			t.Errorf("parseAmount(%q, %v) = %v, want %v", tt.input, tt.parens, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	statement := []string{
		"TD Ameritrade Statement",
		"01/04/21 01/06/21 Cash Buy - Securities Purchased APPLE INC",
		"COM AAPL 10 130.00 (1,300.00) 8,700.00",
		depositLine,
		"Page 2 of 4",
		sellLine,
	}
	var ops []string
	for tx, err := range Load(slices.Values(statement)) {
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		ops = append(ops, tx.Op)
	}
	// "Page 2 of 4" is merged into the deposit line which then fails to match.
	if want := []string{"Buy", "Sell"}; !slices.Equal(ops, want) {
		t.Errorf("Load() ops = %q, want %q", ops, want)
	}
}
