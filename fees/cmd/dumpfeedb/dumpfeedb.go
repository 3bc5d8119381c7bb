// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Tool dumpfeedb prints the fee rate estimate currently persisted in an
// estimator database so that it can be externally inspected.
package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/Matt-Copenhaver/stacks-blockchain/fees"
)

type config struct {
	DB     string `short:"b" long:"db" description:"Path to fee estimate database"`
	DBType string `long:"dbtype" description:"Database backend" choice:"bolt" choice:"leveldb" default:"bolt"`
}

func main() {
	cfg := config{
		DB: "fee_estimator_scalar_rate.db",
	}

	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return
	}

	store, err := fees.NewStore(fees.StoreConfig{Type: cfg.DBType, Path: cfg.DB})
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open fee estimate db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	estimate, err := store.Read()
	if errors.Is(err, fees.ErrNoEstimateAvailable) {
		fmt.Println("no estimate available")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to read fee estimate: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("high:   %.4f\nmiddle: %.4f\nlow:    %.4f\n",
		estimate.High, estimate.Middle, estimate.Low)
}
