package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion.
func completion() {
	accountFlags := map[string]complete.Predictor{
		"n": predict.Nothing,
		"a": predict.Nothing,
		"m": predict.Nothing,
	}
	command := &complete.Command{
		Flags: map[string]complete.Predictor{
			"file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"create": {Flags: map[string]complete.Predictor{
				"n": predict.Nothing,
				"t": predict.Nothing,
				"s": predict.Nothing,
				"o": predict.Nothing,
			}},
			"delete":   {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"list":     {},
			"deposit":  {Flags: accountFlags},
			"withdraw": {Flags: accountFlags},
			"transfer": {Flags: map[string]complete.Predictor{
				"from": predict.Nothing,
				"to":   predict.Nothing,
				"a":    predict.Nothing,
			}},
			"balance": {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"history": {Flags: map[string]complete.Predictor{
				"n":    predict.Nothing,
				"last": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "file-format", "overdraft", "transfers"}},
		},
	}
	command.Complete("banque")
}
