package tdastmt

import "regexp"

// linePattern matches a whole statement line. Groups, in order:
//
//	trade_date settle_date acc_type [op] - activity description
//	[<fee_type> Fee <fee>] [Payable: <payable>] [<dividend_type> Dividends <dividends>]
//	symbol_cusip qty price amount balance
var linePattern = regexp.MustCompile(
	`^(?P<trade_date>[\d/]+) (?P<settle_date>[\d/]+) ` +
		`(?P<acc_type>\w+) ((?P<op>\S+) )?- ` +
		`(?P<activity>([A-Z][a-z]+\s?){1,2}) ` +
		`(?P<description>[A-Z].+?)` +
		`( (?P<fee_type>\w+) Fee (?P<fee>[\d.,]+))*` +
		`( Payable: (?P<payable>[\d/]+))*` +
		`( (?P<dividend_type>\w+) Dividends (?P<dividends>[\d.,]+))* ` +
		`(?P<symbol_cusip>[A-Z0-9\-]+) ` +
		`(?P<qty>[\d,\-]+) (?P<price>[\d.,]+) ` +
		`(?P<amount>\(?[\d.,]+\)?) (?P<balance>[\d.,\s]+?)\s*$`,
)

// fields is the textual content of a matched statement line.
type fields struct {
	tradeDate, settleDate string
	accType, op           string
	activity, description string
	feeType, fee          string
	payable               string
	dividendType          string
	dividends             string
	security, qty         string
	price, amount         string
	balance               string
}

var groups = struct {
	tradeDate, settleDate, accType, op, activity, description int
	feeType, fee, payable, dividendType, dividends            int
	security, qty, price, amount, balance                     int
}{
	tradeDate:    linePattern.SubexpIndex("trade_date"),
	settleDate:   linePattern.SubexpIndex("settle_date"),
	accType:      linePattern.SubexpIndex("acc_type"),
	op:           linePattern.SubexpIndex("op"),
	activity:     linePattern.SubexpIndex("activity"),
	description:  linePattern.SubexpIndex("description"),
	feeType:      linePattern.SubexpIndex("fee_type"),
	fee:          linePattern.SubexpIndex("fee"),
	payable:      linePattern.SubexpIndex("payable"),
	dividendType: linePattern.SubexpIndex("dividend_type"),
	dividends:    linePattern.SubexpIndex("dividends"),
	security:     linePattern.SubexpIndex("symbol_cusip"),
	qty:          linePattern.SubexpIndex("qty"),
	price:        linePattern.SubexpIndex("price"),
	amount:       linePattern.SubexpIndex("amount"),
	balance:      linePattern.SubexpIndex("balance"),
}

// match splits line into its fields. It returns false if line is not a
// statement line.
//
// Optional groups are either complete or empty: a fee or a dividend has both a
// type and an amount, and a line without security has no quantity either.
func match(line string) (fields, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return fields{}, false
	}
	f := fields{
		tradeDate:    m[groups.tradeDate],
		settleDate:   m[groups.settleDate],
		accType:      m[groups.accType],
		op:           m[groups.op],
		activity:     m[groups.activity],
		description:  m[groups.description],
		feeType:      m[groups.feeType],
		fee:          m[groups.fee],
		payable:      m[groups.payable],
		dividendType: m[groups.dividendType],
		dividends:    m[groups.dividends],
		security:     m[groups.security],
		qty:          m[groups.qty],
		price:        m[groups.price],
		amount:       m[groups.amount],
		balance:      m[groups.balance],
	}
	if f.security == none && f.qty != none {
		return fields{}, false
	}
	return f, true
}
