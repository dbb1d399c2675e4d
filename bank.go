package banque

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Bank holds all accounts of the simulator, keyed by account number.
//
// A Bank is an explicitly constructed, explicitly passed value: one per run,
// initialized empty or by loading a file, never hidden behind package state.
type Bank struct {
	accounts map[string]*Account
}

// NewBank creates an empty bank.
func NewBank() *Bank {
	return &Bank{accounts: make(map[string]*Account)}
}

// Len returns the number of accounts.
func (b *Bank) Len() int { return len(b.accounts) }

// Account returns the account with this number, or nil if unknown.
func (b *Bank) Account(number string) *Account {
	return b.accounts[number]
}

// CreateAccount opens a new account. A positive initial balance is recorded
// as an opening deposit. It fails with ErrDuplicateAccount when the number is
// already in use.
func (b *Bank) CreateAccount(number, holder string, initial, overdraft Money) (*Account, error) {
	if _, ok := b.accounts[number]; ok {
		return nil, fmt.Errorf("account %q: %w", number, ErrDuplicateAccount)
	}
	account, err := NewAccount(number, holder, initial, overdraft)
	if err != nil {
		return nil, err
	}
	b.accounts[number] = account
	return account, nil
}

// DeleteAccount removes an account and discards its history, irreversibly.
// It fails with ErrAccountNotFound when the number is unknown.
func (b *Bank) DeleteAccount(number string) error {
	if _, ok := b.accounts[number]; !ok {
		return fmt.Errorf("account %q: %w", number, ErrAccountNotFound)
	}
	delete(b.accounts, number)
	return nil
}

// Transfer moves an amount from one account to another as a withdrawal leg
// followed by a deposit leg, each labeled with its counterparty. If the
// withdrawal is refused (bad amount, overdraft floor) the transfer fails with
// no state change. The deposit of a positive amount after a successful
// withdrawal cannot fail.
func (b *Bank) Transfer(src, dest string, amount Money) error {
	source, ok := b.accounts[src]
	if !ok {
		return fmt.Errorf("source account %q: %w", src, ErrAccountNotFound)
	}
	target, ok := b.accounts[dest]
	if !ok {
		return fmt.Errorf("destination account %q: %w", dest, ErrAccountNotFound)
	}
	if src == dest {
		return fmt.Errorf("transfer from %q to %q: %w", src, dest, ErrSameAccountTransfer)
	}
	if err := source.Withdraw(amount, fmt.Sprintf("Virement vers %s", dest)); err != nil {
		return err
	}
	return target.Deposit(amount, fmt.Sprintf("Virement de %s", src))
}

// Accounts iterates over all accounts in canonical order (sorted by account
// number, the order used by the persisted file).
func (b *Bank) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		numbers := slices.Collect(maps.Keys(b.accounts))
		slices.Sort(numbers)
		for _, number := range numbers {
			if !yield(b.accounts[number]) {
				return
			}
		}
	}
}

// add inserts a loaded account as-is. Used by decoding, where the persisted
// history is authoritative.
func (b *Bank) add(account *Account) error {
	if _, ok := b.accounts[account.Number()]; ok {
		return fmt.Errorf("account %q: %w", account.Number(), ErrDuplicateAccount)
	}
	b.accounts[account.Number()] = account
	return nil
}

// Equal reports whether two banks hold the same accounts with equal balances,
// overdraft limits and histories.
func (b *Bank) Equal(o *Bank) bool {
	if b.Len() != o.Len() {
		return false
	}
	for number, account := range b.accounts {
		other, ok := o.accounts[number]
		if !ok || !account.Equal(other) {
			return false
		}
	}
	return true
}
