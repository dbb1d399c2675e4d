package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/banque"
	"github.com/etnz/banque/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// --- Create Command ---

type createCmd struct {
	number    string
	holder    string
	initial   float64
	overdraft float64
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "open a new account" }
func (*createCmd) Usage() string {
	return `create -t <holder> [-n <number>] [-s <initial balance>] [-o <overdraft limit>]

  Opens a new account. A positive initial balance is recorded as an opening
  deposit. When no number is given, one is generated.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number (generated when omitted)")
	f.StringVar(&c.holder, "t", "", "Account holder name")
	f.Float64Var(&c.initial, "s", 0, "Initial balance")
	f.Float64Var(&c.overdraft, "o", 0, "Overdraft limit (how far below zero the balance may go)")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holder == "" || c.initial < 0 || c.overdraft < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	number := c.number
	if number == "" {
		number = uuid.NewString()
	}
	return mutate(func(bank *banque.Bank) error {
		account, err := bank.CreateAccount(number, c.holder, banque.EUR(c.initial), banque.EUR(c.overdraft))
		if err != nil {
			return err
		}
		fmt.Printf("Created account %s for %s (balance %s)\n", account.Number(), account.Holder(), account.Balance())
		return nil
	})
}

// --- Delete Command ---

type deleteCmd struct {
	number string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "close an account and discard its history" }
func (*deleteCmd) Usage() string {
	return `delete -n <number>

  Closes an account. The account and its history are removed irreversibly.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(bank *banque.Bank) error {
		if err := bank.DeleteAccount(c.number); err != nil {
			return err
		}
		fmt.Printf("Deleted account %s\n", c.number)
		return nil
	})
}

// --- List Command ---

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all accounts" }
func (*listCmd) Usage() string {
	return `list

  Lists all accounts with their balance, overdraft limit and activity.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bank, err := loadBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(bank))
	return subcommands.ExitSuccess
}
