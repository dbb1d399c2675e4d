package banque

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is a typed string identifying the nature of an operation.
type Kind string

// Operation kinds. The persisted values are the historical French tokens of
// the bank file format.
const (
	Deposit    Kind = "depot"
	Withdrawal Kind = "retrait"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Deposit:
		return Deposit, nil
	case Withdrawal:
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("unknown operation type: %q", s)
	}
}

// Operation is one immutable entry of an account's history: a deposit or a
// withdrawal, with the instant it was recorded and an optional free-text
// description. Transfer legs carry their counterparty in the description,
// set when the operation is appended, never afterwards.
type Operation struct {
	Stamp       Timestamp
	Kind        Kind
	Amount      Money // always positive, the Kind carries the direction
	Description string
}

// NewOperation records an operation at the current instant. Amount validation
// is the Account's responsibility, not performed here.
func NewOperation(kind Kind, amount Money, description string) Operation {
	return Operation{
		Stamp:       Now(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
	}
}

// Signed returns the amount with the sign implied by the operation kind:
// positive for deposits, negative for withdrawals.
func (o Operation) Signed() Money {
	if o.Kind == Withdrawal {
		return o.Amount.Neg()
	}
	return o.Amount
}

// String renders the operation as a one line summary:
//
//	[2025-08-30] DEPOT: +€100.00 - Solde initial
func (o Operation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", o.Stamp.Day(), strings.ToUpper(string(o.Kind)), o.Signed().SignedString())
	if o.Description != "" {
		fmt.Fprintf(&b, " - %s", o.Description)
	}
	return b.String()
}

// Equal reports whether two operations have the same stamp, kind, amount and
// description.
func (o Operation) Equal(p Operation) bool {
	return o.Stamp == p.Stamp && o.Kind == p.Kind && o.Amount.Equal(p.Amount) && o.Description == p.Description
}

// MarshalJSON implements the json.Marshaler interface for Operation, keeping
// the historical field order of the bank file.
func (o Operation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", o.Stamp)
	w.Append("type", o.Kind)
	w.Append("montant", o.Amount)
	w.Append("description", o.Description)
	return w.MarshalJSON()
}

// operationRecord mirrors the persisted shape of an Operation. Pointer fields
// detect missing keys so that a malformed entry fails the whole load.
type operationRecord struct {
	Date        *Timestamp `json:"date"`
	Type        *string    `json:"type"`
	Montant     *Money     `json:"montant"`
	Description string     `json:"description"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Operation. The
// persisted timestamp is restored verbatim, never regenerated.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var rec operationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.Date == nil {
		return fmt.Errorf("operation is missing %q", "date")
	}
	if rec.Type == nil {
		return fmt.Errorf("operation is missing %q", "type")
	}
	if rec.Montant == nil {
		return fmt.Errorf("operation is missing %q", "montant")
	}
	kind, err := ParseKind(*rec.Type)
	if err != nil {
		return err
	}
	o.Stamp = *rec.Date
	o.Kind = kind
	o.Amount = *rec.Montant
	o.Description = rec.Description
	return nil
}
