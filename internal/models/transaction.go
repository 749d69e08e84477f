// Package models provides the data structures shared by the parsers, the
// categorizer and the closing report.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is the canonical movement produced by every statement adapter.
// Amount is signed: positive values are entries, negative values are exits.
// Date is kept exactly as the provider exported it.
type Transaction struct {
	Date        string          `csv:"Data"`
	Description string          `csv:"Descricao"`
	Amount      decimal.Decimal `csv:"Valor"`
	Account     string          `csv:"Conta"`
	Category    string          `csv:"Categoria"`
}

// NewTransaction builds an uncategorized transaction for the given account.
func NewTransaction(date, description string, amount decimal.Decimal, account string) Transaction {
	return Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Account:     account,
	}
}

// IsEntry reports whether the movement is an inflow.
func (t Transaction) IsEntry() bool {
	return t.Amount.IsPositive()
}

// IsExit reports whether the movement is an outflow.
func (t Transaction) IsExit() bool {
	return t.Amount.IsNegative()
}

// WithCategory returns a copy of the transaction carrying the given category.
func (t Transaction) WithCategory(category string) Transaction {
	t.Category = category
	return t
}
