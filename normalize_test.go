package txconv

import (
	"testing"
	"time"

	"github.com/etnz/txconv/date"
	"github.com/etnz/txconv/firstrade"
	"github.com/etnz/txconv/tdasg"
	"github.com/etnz/txconv/tdastmt"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustFirstrade(t *testing.T, line string) firstrade.Confirmation {
	t.Helper()
	c, ok, err := firstrade.ParseLine(line)
	if err != nil || !ok {
		t.Fatalf("firstrade.ParseLine(%q) = %v, %v", line, ok, err)
	}
	return c
}

func mustTDASg(t *testing.T, line string) tdasg.Confirmation {
	t.Helper()
	c, ok, err := tdasg.ParseLine(line)
	if err != nil || !ok {
		t.Fatalf("tdasg.ParseLine(%q) = %v, %v", line, ok, err)
	}
	return c
}

func mustTDAStmt(t *testing.T, line string) tdastmt.Transaction {
	t.Helper()
	tx, ok, err := tdastmt.ParseLine(line)
	if err != nil || !ok {
		t.Fatalf("tdastmt.ParseLine(%q) = %v, %v", line, ok, err)
	}
	return tx
}

func TestFromFirstrade(t *testing.T) {
	buy := mustFirstrade(t, firstradeBuy)
	tests := []struct {
		name   string
		schema Schema
		want   Transaction
	}{
		{
			name:   "stockscafe",
			schema: StocksCafeSchema,
			want: Transaction{
				Op: OpBuy, ExchangeCode: "USX", Symbol: "AAPL", Quantity: qty(10), Currency: "USD",
				Price: dec("150.00"), Date: date.New(2021, 1, 2), AmountAfterFee: dec("1500.00"),
				Notes: "converted from firstrade_cfm (2024-05-06T07:08:09)",
			},
		},
		{
			name:   "legacy",
			schema: LegacySchema,
			want: Transaction{
				Op: OpBuy, ExchangeCode: "USX", Symbol: "AAPL", Quantity: qty(10), Currency: "USD",
				Price: dec("150.00"), Date: date.New(2021, 1, 2), AmountAfterFee: dec("1500.00"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalizer{Schema: tt.schema, Now: fixedClock()}
			got, ok := n.FromFirstrade(buy)
			if !ok {
				t.Fatalf("FromFirstrade() dropped a buy")
			}
			if diff := cmp.Diff(tt.want, got, cmpOptions...); diff != "" {
				t.Errorf("FromFirstrade() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromFirstradeDropsCashMovements(t *testing.T) {
	var n Normalizer
	if tx, ok := n.FromFirstrade(mustFirstrade(t, firstradeDeposit)); ok {
		t.Errorf("FromFirstrade() = %v, want a dropped deposit", tx)
	}
}

func TestFromTDASg(t *testing.T) {
	buy := mustTDASg(t, tdasgBuy)
	tests := []struct {
		name   string
		schema Schema
		price  string
	}{
		{"stockscafe uses the unit price", StocksCafeSchema, "150"},
		{"legacy uses the principal", LegacySchema, "1500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalizer{Schema: tt.schema, Now: fixedClock()}
			got, ok := n.FromTDASg(buy)
			if !ok {
				t.Fatalf("FromTDASg() dropped a record")
			}
			want := Transaction{
				Op: OpBuy, ExchangeCode: "USX", Symbol: "AAPL", Quantity: qty(10), Currency: "USD",
				Price: dec(tt.price), Date: date.New(2021, 1, 2), AmountAfterFee: dec("1495"),
				Notes: "converted from tda_sg_trade_cfm (2024-05-06T07:08:09)",
			}
			if diff := cmp.Diff(want, got, cmpOptions...); diff != "" {
				t.Errorf("FromTDASg() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromTDAStmt(t *testing.T) {
	n := Normalizer{Now: fixedClock()}
	got, ok := n.FromTDAStmt(mustTDAStmt(t, tdastmtSell))
	if !ok {
		t.Fatalf("FromTDAStmt() dropped a sell")
	}
	want := Transaction{
		Op: OpSell, ExchangeCode: "USX", Symbol: "TSLA", Quantity: qty(-5), Currency: "USD",
		Price: dec("800"), Date: date.New(2021, 2, 10),
	}
	if diff := cmp.Diff(want, got, cmpOptions...); diff != "" {
		t.Errorf("FromTDAStmt() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromTDAStmtDropsNonTrades(t *testing.T) {
	// no operation, no security, no quantity.
	deposit := mustTDAStmt(t, tdastmtDeposit)
	if deposit.Security != "" || deposit.Quantity != nil {
		t.Fatalf("deposit has a position: %q %v", deposit.Security, deposit.Quantity)
	}
	var n Normalizer
	if tx, ok := n.FromTDAStmt(deposit); ok {
		t.Errorf("FromTDAStmt() = %v, want a dropped deposit", tx)
	}
}

func TestNormalizerSettings(t *testing.T) {
	n := Normalizer{Exchange: "NYSE", Currency: "EUR"}
	got, _ := n.FromTDAStmt(mustTDAStmt(t, tdastmtBuy))
	if got.ExchangeCode != "NYSE" || got.Currency != "EUR" {
		t.Errorf("FromTDAStmt() = %q %q, want NYSE EUR", got.ExchangeCode, got.Currency)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	c := mustTDASg(t, tdasgSell)
	first := Normalizer{Now: fixedClock()}
	second := Normalizer{Now: func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local) }}

	a, _ := first.FromTDASg(c)
	b, _ := second.FromTDASg(c)
	if a.Notes == b.Notes {
		t.Errorf("notes should differ by their timestamp: %q", a.Notes)
	}
	opts := append(cmpOptions, cmpopts.IgnoreFields(Transaction{}, "Notes"))
	if diff := cmp.Diff(a, b, opts...); diff != "" {
		t.Errorf("normalizing twice mismatch (-first +second):\n%s", diff)
	}
}
