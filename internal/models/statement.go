package models

import "github.com/shopspring/decimal"

// Statement is the result of running one provider file through its adapter.
//
// Entries holds the sum of inflows, Exits the (non-positive) sum of outflows
// and Result is always Entries + Exits.
type Statement struct {
	Account      string
	Entries      decimal.Decimal
	Exits        decimal.Decimal
	Result       decimal.Decimal
	Transactions []Transaction
}

// NewStatement returns an empty statement for account.
func NewStatement(account string) *Statement {
	return &Statement{
		Account:      account,
		Entries:      decimal.Zero,
		Exits:        decimal.Zero,
		Result:       decimal.Zero,
		Transactions: []Transaction{},
	}
}

// AddEntry accumulates an inflow into the running totals.
func (s *Statement) AddEntry(amount decimal.Decimal) {
	s.Entries = s.Entries.Add(amount)
	s.Result = s.Entries.Add(s.Exits)
}

// AddExit accumulates an outflow. The amount is expected to be non-positive.
func (s *Statement) AddExit(amount decimal.Decimal) {
	s.Exits = s.Exits.Add(amount)
	s.Result = s.Entries.Add(s.Exits)
}

// Append records a transaction on the statement without touching totals.
func (s *Statement) Append(tx Transaction) {
	s.Transactions = append(s.Transactions, tx)
}
