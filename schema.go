package txconv

import "fmt"

// Schema selects how statement records are mapped to StocksCafe columns.
//
// Two mappings have been used to import into StocksCafe and they disagree, so
// the choice is left to the caller.
type Schema int

const (
	// StocksCafeSchema writes the unit price in the price column and records
	// the provenance of Firstrade and TDA SG records in notes.
	StocksCafeSchema Schema = iota
	// LegacySchema writes the TDA SG principal in the price column and leaves
	// Firstrade notes empty.
	LegacySchema
)

func (s Schema) String() string {
	switch s {
	case StocksCafeSchema:
		return "stockscafe"
	case LegacySchema:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseSchema parses a string into a Schema.
func ParseSchema(s string) (Schema, error) {
	switch s {
	case "stockscafe", "":
		return StocksCafeSchema, nil
	case "legacy":
		return LegacySchema, nil
	default:
		return 0, fmt.Errorf("unknown schema: %q", s)
	}
}
