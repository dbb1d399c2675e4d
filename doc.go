// Package banque implements a personal bank-account ledger simulator: named
// accounts with balances, overdraft limits and operation histories, deposits,
// withdrawals and transfers between accounts, persisted as a single JSON file
// between runs.
//
// The package is the core; front-ends (the banque CLI in cmd/) drive it
// through Bank and Account and render the results.
package banque
