package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/banque"
	"github.com/etnz/banque/renderer"
	"github.com/google/subcommands"
)

// --- Balance Command ---

type balanceCmd struct {
	number string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display an account's balance" }
func (*balanceCmd) Usage() string {
	return `balance -n <number>

  Displays the account number, holder and current balance.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	bank, err := loadBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account := bank.Account(c.number)
	if account == nil {
		fmt.Fprintf(os.Stderr, "account %q: %v\n", c.number, banque.ErrAccountNotFound)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Summary(account))
	return subcommands.ExitSuccess
}

// --- History Command ---

type historyCmd struct {
	number string
	last   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display an account's operation history" }
func (*historyCmd) Usage() string {
	return `history -n <number> [-last <count>]

  Displays the operations recorded on an account, oldest first. Use -last to
  keep only the most recent ones.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
	f.IntVar(&c.last, "last", 0, "Show only the last N operations (0 for all)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	bank, err := loadBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account := bank.Account(c.number)
	if account == nil {
		fmt.Fprintf(os.Stderr, "account %q: %v\n", c.number, banque.ErrAccountNotFound)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.History(account, c.last))
	return subcommands.ExitSuccess
}
