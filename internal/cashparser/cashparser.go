// Package cashparser reads the manual cash ledger kept next to the bank
// statements. Each line has a date, a description, a type (Entrada or
// Saída) and an unsigned value.
package cashparser

import (
	"context"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/common"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"

	"github.com/shopspring/decimal"
)

// ParserName identifies the adapter in logs and errors.
const ParserName = "cash"

// Ledger column names, in lookup order.
var (
	DateAliases        = []string{"Data", "DATA", "data"}
	DescriptionAliases = []string{"Descrição", "Descricao", "DESCRIÇÃO", "DESCRICAO", "descrição", "descricao"}
	TypeAliases        = []string{"Tipo", "TIPO", "tipo"}
	ValueAliases       = []string{"Valor", "VALOR", "valor", "Valor (R$)"}
)

// Normalized values of the type column.
const (
	TypeEntry = "ENTRADA"
	TypeExit  = "SAIDA"
)

// Validate checks for the date and value columns.
func Validate(table *tabular.Table) error {
	if err := parser.RequireColumn(table, "date", DateAliases...); err != nil {
		return err
	}
	return parser.RequireColumn(table, "value", ValueAliases...)
}

// Parse converts ledger lines into transactions. Entrada lines are inflows
// and Saída lines outflows whatever the sign typed in the value column;
// lines with any other type keep the sign of the value.
func Parse(ctx context.Context, table *tabular.Table, base *parser.BaseParser) (*models.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Validate(table); err != nil {
		return nil, err
	}

	statement := models.NewStatement(base.Account())
	for _, row := range table.Rows {
		amount := decimal.Zero
		if raw, column, ok := common.FirstPresent(row, ValueAliases...); ok {
			v, err := base.ParseAmount(raw, column)
			if err != nil {
				return nil, err
			}
			amount = v
		}

		kind, _, _ := common.FirstPresent(row, TypeAliases...)
		switch strings.TrimSpace(textutils.NormalizeText(kind)) {
		case TypeEntry:
			amount = amount.Abs()
		case TypeExit:
			amount = amount.Abs().Neg()
		}

		switch {
		case amount.IsPositive():
			statement.AddEntry(amount)
		case amount.IsNegative():
			statement.AddExit(amount)
		}

		description, _, ok := common.FirstPresent(row, DescriptionAliases...)
		if ok {
			description = strings.TrimSpace(description)
		} else {
			description = common.SynthesizeDescription(row)
		}

		date, _, _ := common.FirstPresent(row, DateAliases...)
		statement.Append(models.NewTransaction(strings.TrimSpace(date), description, amount, base.Account()))
	}
	return statement, nil
}
