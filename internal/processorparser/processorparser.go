// Package processorparser reads payment-processor statements (PagSeguro
// layout) where inflows and outflows live in separate magnitude columns.
package processorparser

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
const ParserName = "processor"

// EntryAliases name the inflow column.
var EntryAliases = []string{"Entradas", "ENTRADAS", "entradas"}

// ExitAliases name the outflow column.
var ExitAliases = []string{"Saidas", "SAIDAS", "saidas", "Saídas", "SAÍDAS", "saídas"}

// DateAliases name the date column.
var DateAliases = []string{"Data", "DATA", "data"}

// BalanceMarker flags the daily balance lines of the export.
const BalanceMarker = "SALDO DO DIA"

// Validate checks for a date column and at least one movement column.
func Validate(table *tabular.Table) error {
	if err := parser.RequireColumn(table, "date", DateAliases...); err != nil {
		return err
	}
	if common.HasAnyColumn(table.Columns, ExitAliases...) {
		return nil
	}
	return parser.RequireColumn(table, "entries", EntryAliases...)
}

// Parse converts processor rows into transactions. Both columns are read
// as magnitudes: amount = |entradas| - |saidas|, entries grow by |entradas|
// and exits shrink by |saidas|.
func Parse(ctx context.Context, table *tabular.Table, base *parser.BaseParser) (*models.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Validate(table); err != nil {
		return nil, err
	}

	statement := models.NewStatement(base.Account())
	skipped := 0

	for _, row := range table.Rows {
		description := common.SynthesizeDescription(row)
		if strings.Contains(textutils.NormalizeText(description), BalanceMarker) {
			skipped++
			continue
		}

		entry, err := magnitude(base, row, EntryAliases)
		if err != nil {
			return nil, err
		}
		exit, err := magnitude(base, row, ExitAliases)
		if err != nil {
			return nil, err
		}

		statement.AddEntry(entry)
		statement.AddExit(exit.Neg())

		date, _, _ := common.FirstPresent(row, DateAliases...)
		statement.Append(models.NewTransaction(strings.TrimSpace(date), description, entry.Sub(exit), base.Account()))
	}

	base.GetLogger().Debug("Processor rows processed",
		logging.F(logging.FieldCount, len(statement.Transactions)),
		logging.F("skipped_balance_rows", skipped))
	return statement, nil
}

func magnitude(base *parser.BaseParser, row tabular.Row, aliases []string) (decimal.Decimal, error) {
	raw, column, ok := common.FirstPresent(row, aliases...)
	if !ok {
		return decimal.Zero, nil
	}
	v, err := base.ParseAmount(raw, column)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Abs(), nil
}
