package models

import "github.com/shopspring/decimal"

// CategorySummary aggregates the movements of one category.
type CategorySummary struct {
	Category string          `csv:"Categoria"`
	Entries  decimal.Decimal `csv:"Entradas"`
	Exits    decimal.Decimal `csv:"Saidas"`
}

// Net returns entries plus exits for the category.
func (c CategorySummary) Net() decimal.Decimal {
	return c.Entries.Add(c.Exits)
}

// AccountSummary holds the provider totals of one account.
type AccountSummary struct {
	Account string          `csv:"Conta"`
	Entries decimal.Decimal `csv:"Entradas"`
	Exits   decimal.Decimal `csv:"Saidas"`
	Result  decimal.Decimal `csv:"Resultado"`
}

// PeriodSummary is the consolidated outcome of one closing run.
type PeriodSummary struct {
	Entries        decimal.Decimal
	Exits          decimal.Decimal
	NetResult      decimal.Decimal
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}

// NewPeriodSummary derives net result and closing balance from the totals.
func NewPeriodSummary(entries, exits, opening decimal.Decimal) PeriodSummary {
	net := entries.Add(exits)
	return PeriodSummary{
		Entries:        entries,
		Exits:          exits,
		NetResult:      net,
		OpeningBalance: opening,
		ClosingBalance: opening.Add(net),
	}
}
