package banque

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Balances and amounts are persisted as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeBank writes the whole bank as a single indented JSON document keyed
// by account number, accounts in canonical (sorted) order.
func EncodeBank(w io.Writer, b *Bank) error {
	decimal.MarshalJSONWithoutQuotes = true
	var obj jsonObjectWriter
	for account := range b.Accounts() {
		obj.Append(account.Number(), account)
	}
	compact, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode bank: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, compact, "", "  "); err != nil {
		return fmt.Errorf("could not encode bank: %w", err)
	}
	indented.WriteByte('\n')
	_, err = w.Write(indented.Bytes())
	return err
}

// DecodeBank reads a bank file. Decoding is all-or-nothing: any structurally
// invalid account or operation fails the whole load with ErrBadFormat, no
// partial import.
func DecodeBank(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	bank := NewBank()
	for number, rawAccount := range raw {
		account := new(Account)
		if err := json.Unmarshal(rawAccount, account); err != nil {
			return nil, fmt.Errorf("%w: account %q: %v", ErrBadFormat, number, err)
		}
		if account.Number() != number {
			return nil, fmt.Errorf("%w: account keyed %q declares numero %q", ErrBadFormat, number, account.Number())
		}
		if err := bank.add(account); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
	}
	return bank, nil
}
