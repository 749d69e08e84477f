// Package bankparser reads checking-account statements (Itaú layout): one
// signed value column, or a debit/credit pair, plus balance snapshot rows
// that have to be filtered out.
package bankparser

import (
	"context"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/common"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"

	"github.com/shopspring/decimal"
)

// ParserName identifies the adapter in logs and errors.
const ParserName = "bank"

// ValueAliases are the names the signed value column goes by, in lookup order.
var ValueAliases = []string{"Valor", "VALOR", "valor", "Valor (R$)", "VALOR (R$)"}

// DateAliases are the names of the date column, in lookup order.
var DateAliases = []string{"Data", "DATA", "data", "Data Lançamento", "DATA LANÇAMENTO"}

// BalanceMarkers identify informational balance rows. They are matched
// against the normalized description.
var BalanceMarkers = []string{
	"SALDO ANTERIOR",
	"SALDO DO DIA",
	"SALDO DISPONIVEL",
	"SALDO FINAL",
	"SALDO TOTAL",
}

const (
	debitToken  = "DEBITO"
	creditToken = "CREDITO"
)

// Validate checks that the header has a date column and some way to read
// the amount.
func Validate(table *tabular.Table) error {
	if err := parser.RequireColumn(table, "date", DateAliases...); err != nil {
		return err
	}
	if common.HasAnyColumn(table.Columns, ValueAliases...) {
		return nil
	}
	if len(common.ColumnsContaining(table.Columns, debitToken)) > 0 ||
		len(common.ColumnsContaining(table.Columns, creditToken)) > 0 {
		return nil
	}
	return parser.RequireColumn(table, "value", ValueAliases...)
}

// Parse converts the rows of a bank statement into transactions.
//
// The value column is tried first. When it yields exactly zero (missing,
// blank or a literal 0) the debit/credit columns are used instead and the
// amount is |credit| - |debit|. Taking magnitudes differs from a plain
// credit - debit on purpose: some exports already sign the debit column
// ("-50,00"), and that row must still be an exit of 50, not an entry.
// A genuine zero movement also goes through the debit/credit path; with no
// such columns it stays zero.
func Parse(ctx context.Context, table *tabular.Table, base *parser.BaseParser) (*models.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Validate(table); err != nil {
		return nil, err
	}

	logger := base.GetLogger()
	debitColumns := common.ColumnsContaining(table.Columns, debitToken)
	creditColumns := common.ColumnsContaining(table.Columns, creditToken)

	statement := models.NewStatement(base.Account())
	skipped := 0

	for _, row := range table.Rows {
		description := common.SynthesizeDescription(row)
		if textutils.ContainsAny(textutils.NormalizeText(description), BalanceMarkers...) {
			skipped++
			continue
		}

		amount := decimal.Zero
		if raw, column, ok := common.FirstPresent(row, ValueAliases...); ok {
			v, err := base.ParseAmount(raw, column)
			if err != nil {
				return nil, err
			}
			amount = v
		}

		if amount.IsZero() {
			debit, err := firstNonZero(base, row, debitColumns)
			if err != nil {
				return nil, err
			}
			credit, err := firstNonZero(base, row, creditColumns)
			if err != nil {
				return nil, err
			}
			amount = credit.Abs().Sub(debit.Abs())
		}

		switch {
		case amount.IsPositive():
			statement.AddEntry(amount)
		case amount.IsNegative():
			statement.AddExit(amount)
		}

		date, _, _ := common.FirstPresent(row, DateAliases...)
		statement.Append(models.NewTransaction(strings.TrimSpace(date), description, amount, base.Account()))
	}

	logger.Debug("Bank rows processed",
		logging.F(logging.FieldCount, len(statement.Transactions)),
		logging.F("skipped_balance_rows", skipped))
	return statement, nil
}

func firstNonZero(base *parser.BaseParser, row tabular.Row, columns []string) (decimal.Decimal, error) {
	for _, column := range columns {
		raw, ok := row.Get(column)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := base.ParseAmount(raw, column)
		if err != nil {
			return decimal.Zero, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
	return decimal.Zero, nil
}
