package banque

import (
	"encoding/json"
	"fmt"
)

// openingDescription is the description recorded for the opening deposit of
// an account created with a positive initial balance. It keeps the historical
// French wording so files written by older simulators read the same.
const openingDescription = "Solde initial"

// Account is a bank account: a balance, an overdraft limit, and the
// append-only, chronological history of its operations.
//
// The invariant balance >= -overdraft holds at all times; any operation that
// would break it is rejected before mutating anything.
type Account struct {
	number    string
	holder    string
	balance   Money
	overdraft Money // non-negative; how far below zero the balance may go
	history   []Operation
}

// NewAccount creates an account. A positive initial balance is recorded as an
// opening deposit in the history.
func NewAccount(number, holder string, initial, overdraft Money) (*Account, error) {
	if number == "" {
		return nil, fmt.Errorf("account number is missing")
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("initial balance %s: %w", initial, ErrInvalidAmount)
	}
	if overdraft.IsNegative() {
		return nil, fmt.Errorf("overdraft limit %s: %w", overdraft, ErrInvalidAmount)
	}
	a := &Account{number: number, holder: holder, overdraft: overdraft}
	if initial.IsPositive() {
		if err := a.Deposit(initial, openingDescription); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Number returns the account's unique number.
func (a *Account) Number() string { return a.number }

// Holder returns the account holder's name.
func (a *Account) Holder() string { return a.holder }

// Balance returns the current balance.
func (a *Account) Balance() Money { return a.balance }

// Overdraft returns the overdraft limit, the magnitude by which the balance
// may go negative before withdrawals are refused.
func (a *Account) Overdraft() Money { return a.overdraft }

// Deposit credits the account and appends a deposit operation. It fails with
// ErrInvalidAmount when the amount is not strictly positive, leaving balance
// and history untouched.
func (a *Account) Deposit(amount Money, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	a.history = append(a.history, NewOperation(Deposit, amount, description))
	return nil
}

// Withdraw debits the account and appends a withdrawal operation. It fails
// with ErrInvalidAmount when the amount is not strictly positive, and with
// ErrOverdraftExceeded when the debit would push the balance below the
// overdraft floor. On failure balance and history are untouched.
func (a *Account) Withdraw(amount Money, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}
	if a.balance.Sub(amount).LessThan(a.overdraft.Neg()) {
		return fmt.Errorf("withdrawal of %s from balance %s (overdraft %s): %w",
			amount, a.balance, a.overdraft, ErrOverdraftExceeded)
	}
	a.balance = a.balance.Sub(amount)
	a.history = append(a.history, NewOperation(Withdrawal, amount, description))
	return nil
}

// History returns the last 'limit' operations in chronological order, or the
// whole history when limit <= 0. The returned slice is a copy; an empty
// history yields an empty slice, not an error.
func (a *Account) History(limit int) []Operation {
	ops := a.history
	if limit > 0 && limit < len(ops) {
		ops = ops[len(ops)-limit:]
	}
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out
}

// String returns a one-line summary of the account.
func (a *Account) String() string {
	return fmt.Sprintf("%s - %s: %s (%d ops)", a.number, a.holder, a.balance, len(a.history))
}

// Equal reports whether two accounts have the same number, holder, balance,
// overdraft limit and history.
func (a *Account) Equal(b *Account) bool {
	if a.number != b.number || a.holder != b.holder ||
		!a.balance.Equal(b.balance) || !a.overdraft.Equal(b.overdraft) ||
		len(a.history) != len(b.history) {
		return false
	}
	for i := range a.history {
		if !a.history[i].Equal(b.history[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON implements the json.Marshaler interface for Account, keeping
// the historical field order of the bank file. A zero overdraft limit is
// omitted, matching files written before overdrafts existed.
func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("numero", a.number)
	w.Append("titulaire", a.holder)
	w.Append("solde", a.balance)
	if a.overdraft.IsPositive() {
		w.Append("decouvert_max", a.overdraft)
	}
	history := a.history
	if history == nil {
		// an empty history is persisted as [], not null
		history = []Operation{}
	}
	w.Append("historique", history)
	return w.MarshalJSON()
}

// accountRecord mirrors the persisted shape of an Account. Pointer fields
// detect missing keys; decouvert_max is genuinely optional and defaults to
// zero.
type accountRecord struct {
	Numero       *string      `json:"numero"`
	Titulaire    *string      `json:"titulaire"`
	Solde        *Money       `json:"solde"`
	DecouvertMax *Money       `json:"decouvert_max"`
	Historique   *[]Operation `json:"historique"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Account. The
// loaded history is authoritative: no synthetic opening deposit is inserted,
// whatever the balance.
func (a *Account) UnmarshalJSON(data []byte) error {
	var rec accountRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.Numero == nil || *rec.Numero == "" {
		return fmt.Errorf("account is missing %q", "numero")
	}
	if rec.Titulaire == nil {
		return fmt.Errorf("account %q is missing %q", *rec.Numero, "titulaire")
	}
	if rec.Solde == nil {
		return fmt.Errorf("account %q is missing %q", *rec.Numero, "solde")
	}
	if rec.Historique == nil {
		return fmt.Errorf("account %q is missing %q", *rec.Numero, "historique")
	}
	var overdraft Money
	if rec.DecouvertMax != nil {
		overdraft = *rec.DecouvertMax
		if overdraft.IsNegative() {
			return fmt.Errorf("account %q has a negative overdraft limit", *rec.Numero)
		}
	}
	a.number = *rec.Numero
	a.holder = *rec.Titulaire
	a.balance = *rec.Solde
	a.overdraft = overdraft
	a.history = *rec.Historique
	return nil
}
