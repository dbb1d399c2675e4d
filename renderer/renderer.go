// Package renderer turns core banque values into human-readable markdown.
// All user-facing text lives here and in cmd; the core only returns values
// and errors.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/banque"
)

// Operation renders a single history entry as a plain line.
func Operation(op banque.Operation) string {
	return op.String()
}

// Summary renders a one-line balance summary for an account.
func Summary(a *banque.Account) string {
	return fmt.Sprintf("Account %s - %s: %s", a.Number(), a.Holder(), a.Balance())
}

// History renders an account's most recent operations as a markdown section.
// An empty history is a valid result, reported as such.
func History(a *banque.Account, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# History of account %s\n\n", a.Number())
	ops := a.History(limit)
	if len(ops) == 0 {
		b.WriteString("No operations recorded.\n")
		return b.String()
	}
	for _, op := range ops {
		fmt.Fprintf(&b, "- %s\n", Operation(op))
	}
	return b.String()
}

// Accounts renders all accounts of the bank as a markdown table.
func Accounts(bank *banque.Bank) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	if bank.Len() == 0 {
		b.WriteString("No accounts registered.\n")
		return b.String()
	}
	b.WriteString("| Number | Holder | Balance | Overdraft | Operations |\n")
	b.WriteString("|:-------|:-------|--------:|----------:|-----------:|\n")
	for account := range bank.Accounts() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d |\n",
			account.Number(), account.Holder(), account.Balance(),
			account.Overdraft(), len(account.History(0)))
	}
	return b.String()
}
