package cmd

import (
	"github.com/etnz/txconv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the txconv commands.
func Completion() *complete.Command {
	global := map[string]complete.Predictor{
		"config": predict.Files("*.yaml"),
		"env":    predict.Files("*"),
		"v":      predict.Nothing,
	}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"sources": {},
			"topic":   {Args: predict.Set{"firstrade", "tda-sg", "tda-stmt", "config", "*"}},
		},
		Flags: global,
	}
	for _, c := range commands() {
		root.Sub[c.name] = &complete.Command{
			Flags: map[string]complete.Predictor{
				"i":       predict.Or(predict.Files("*.txt"), predict.Files("*.pdf")),
				"o":       predict.Files("*"),
				"schema":  predict.Set{txconv.StocksCafeSchema.String(), txconv.LegacySchema.String()},
				"format":  predict.Set{string(txconv.CSV), string(txconv.JSONL)},
				"summary": predict.Nothing,
			},
		}
	}
	return root
}
