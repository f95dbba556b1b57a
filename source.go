package txconv

import "fmt"

// Source identifies a statement format.
type Source string

const (
	// Firstrade is the Firstrade account history.
	Firstrade Source = "firstrade_cfm"
	// TDASg is the TD Ameritrade Singapore trade confirmations page.
	TDASg Source = "tda_sg_trade_cfm"
	// TDAStmt is the TD Ameritrade account statement.
	TDAStmt Source = "tda_stmt"
)

// Sources returns all the supported sources.
func Sources() []Source { return []Source{Firstrade, TDASg, TDAStmt} }

// ParseSource parses a source name.
func ParseSource(s string) (Source, error) {
	for _, src := range Sources() {
		if string(src) == s {
			return src, nil
		}
	}
	return "", fmt.Errorf("unknown source: %q", s)
}

// DefaultInput returns the file name the statement is usually saved to.
func (s Source) DefaultInput() string {
	switch s {
	case Firstrade:
		return "firstrade_cfm.txt"
	case TDASg:
		return "tda_sg_web.txt"
	case TDAStmt:
		return "td_all.txt"
	}
	return ""
}

// DefaultOutput returns the default StocksCafe import file name.
func (s Source) DefaultOutput() string {
	switch s {
	case Firstrade:
		return "firstrade_cfm_stockscafe.csv"
	case TDASg:
		return "tda_sg_stockscafe.csv"
	case TDAStmt:
		return "tda_stockscafe.csv"
	}
	return ""
}
