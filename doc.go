// Package txconv converts brokerage statements into StocksCafe transactions.
//
// Three statement formats are supported, each one read by its own package:
//   - Firstrade account history ([github.com/etnz/txconv/firstrade]): a tab
//     separated ledger whose entries may wrap over several lines.
//   - TD Ameritrade Singapore trade confirmations ([github.com/etnz/txconv/tdasg]):
//     one tab separated confirmation per line.
//   - TD Ameritrade statements ([github.com/etnz/txconv/tdastmt]): fixed layout
//     statement lines, possibly wrapped.
//
// A [Normalizer] maps each statement record to a [Transaction], the StocksCafe
// import record, dropping what is not buy or sell activity. Transactions are
// then written as CSV with [EncodeCSV] (the StocksCafe import format) or as
// JSONL with [EncodeJSONL].
//
// Parsing is best effort: lines that do not look like statement entries are
// silently skipped, but a value that cannot be read in an entry (a date, a
// number) aborts the conversion.
package txconv
