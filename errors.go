package banque

import "errors"

// Domain errors returned by Account and Bank operations. They are plain
// sentinel values so that front-ends can test them with errors.Is and decide
// how to present the failure.
var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not
	// strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrOverdraftExceeded is returned when a withdrawal would push the
	// balance below the account's overdraft floor.
	ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

	// ErrDuplicateAccount is returned when creating an account with a number
	// already present in the bank.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound is returned when an account number is not present in
	// the bank.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccountTransfer is returned when the source and destination of a
	// transfer are the same account.
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")

	// ErrBadFormat is returned when a persisted bank file is structurally
	// invalid. The whole load fails, no account is partially imported.
	ErrBadFormat = errors.New("malformed bank file")
)
