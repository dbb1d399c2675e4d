package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/banque"
	"github.com/google/subcommands"
)

// --- Deposit Command ---

type depositCmd struct {
	number      string
	amount      float64
	description string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `deposit -n <number> -a <amount> [-m <description>]

  Credits an account and records the operation in its history.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
	f.Float64Var(&c.amount, "a", 0, "Amount to deposit")
	f.StringVar(&c.description, "m", "", "An optional description for the operation")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(bank *banque.Bank) error {
		account := bank.Account(c.number)
		if account == nil {
			return fmt.Errorf("account %q: %w", c.number, banque.ErrAccountNotFound)
		}
		if err := account.Deposit(banque.EUR(c.amount), c.description); err != nil {
			return err
		}
		fmt.Printf("Deposited %s into account %s (balance %s)\n", banque.EUR(c.amount), c.number, account.Balance())
		return nil
	})
}

// --- Withdraw Command ---

type withdrawCmd struct {
	number      string
	amount      float64
	description string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `withdraw -n <number> -a <amount> [-m <description>]

  Debits an account and records the operation in its history. The withdrawal
  is refused if it would push the balance below the overdraft floor.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
	f.Float64Var(&c.amount, "a", 0, "Amount to withdraw")
	f.StringVar(&c.description, "m", "", "An optional description for the operation")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(bank *banque.Bank) error {
		account := bank.Account(c.number)
		if account == nil {
			return fmt.Errorf("account %q: %w", c.number, banque.ErrAccountNotFound)
		}
		if err := account.Withdraw(banque.EUR(c.amount), c.description); err != nil {
			return err
		}
		fmt.Printf("Withdrew %s from account %s (balance %s)\n", banque.EUR(c.amount), c.number, account.Balance())
		return nil
	})
}

// --- Transfer Command ---

type transferCmd struct {
	from   string
	to     string
	amount float64
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between two accounts" }
func (*transferCmd) Usage() string {
	return `transfer -from <number> -to <number> -a <amount>

  Moves an amount between two accounts as a withdrawal leg and a deposit leg,
  each labeled with its counterparty. If the withdrawal is refused the whole
  transfer fails and neither account changes.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account number")
	f.StringVar(&c.to, "to", "", "Destination account number")
	f.Float64Var(&c.amount, "a", 0, "Amount to transfer")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(bank *banque.Bank) error {
		if err := bank.Transfer(c.from, c.to, banque.EUR(c.amount)); err != nil {
			return err
		}
		fmt.Printf("Transferred %s from %s to %s\n", banque.EUR(c.amount), c.from, c.to)
		return nil
	})
}
