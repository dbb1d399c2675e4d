// Package cmd implements the CLI application driving the bank simulator.
//
// Every mutating command follows the same lifecycle: load the bank file,
// apply the operation, save the file back. The menu-driven save/load of the
// historical simulator is the command lifecycle here.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/banque"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&deleteCmd{}, "accounts")
	c.Register(&listCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bankFile = flag.String("file", banque.DefaultFile, "Path to the bank file (JSON)")

// loadBank reads the bank file. A missing file is not an error: the simulator
// starts with an empty bank, as the historical menu did.
func loadBank() (*banque.Bank, error) {
	bank, err := banque.LoadFile(*bankFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, bank file %q does not exist, starting with an empty bank", *bankFile)
		return banque.NewBank(), nil
	}
	return bank, err
}

// saveBank writes the bank back to the bank file.
func saveBank(bank *banque.Bank) error {
	return banque.SaveFile(*bankFile, bank)
}

// mutate runs a load-apply-save cycle and reports failures on stderr.
func mutate(apply func(*banque.Bank) error) subcommands.ExitStatus {
	bank, err := loadBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := apply(bank); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBank(bank); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
