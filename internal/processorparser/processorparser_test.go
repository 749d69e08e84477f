package processorparser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(columns []string, lines ...[]string) *tabular.Table {
	table := &tabular.Table{Columns: columns}
	for _, cells := range lines {
		table.Rows = append(table.Rows, tabular.NewRow(columns, cells))
	}
	return table
}

func newAdapter() *Adapter {
	return NewAdapter(parser.Options{}, nil, logging.NewMockLogger())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name            string
		entradas, saida string
		amount          string
		entries, exits  string
	}{
		{name: "entry only", entradas: "30,00", saida: "0", amount: "30", entries: "30", exits: "0"},
		{name: "exit only", entradas: "0", saida: "20,00", amount: "-20", entries: "0", exits: "-20"},
		{name: "signed exit is a magnitude", entradas: "", saida: "-20,00", amount: "-20", entries: "0", exits: "-20"},
		{name: "both sides", entradas: "100,00", saida: "3,99", amount: "96.01", entries: "100", exits: "-3.99"},
		{name: "nothing", entradas: "", saida: "", amount: "0", entries: "0", exits: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTable([]string{"Data", "Descrição", "Entradas", "Saidas"},
				[]string{"01/02/2025", "Venda cartão", tt.entradas, tt.saida})

			statement, err := newAdapter().Parse(context.Background(), table)
			require.NoError(t, err)
			require.Len(t, statement.Transactions, 1)

			tx := statement.Transactions[0]
			assert.True(t, dec(tt.amount).Equal(tx.Amount), "amount %s", tx.Amount)
			assert.True(t, dec(tt.entries).Equal(statement.Entries), "entries %s", statement.Entries)
			assert.True(t, dec(tt.exits).Equal(statement.Exits), "exits %s", statement.Exits)
			assert.True(t, statement.Result.Equal(statement.Entries.Add(statement.Exits)))
			assert.Equal(t, models.AccountProcessor, tx.Account)
			assert.Equal(t, "Venda cartão", tx.Description)
		})
	}
}

func TestParse_AccentedAliasesAndBalanceRows(t *testing.T) {
	table := newTable([]string{"DATA", "Tipo", "ENTRADAS", "Saídas"},
		[]string{"01/02/2025", "Saldo do dia", "1.000,00", ""},
		[]string{"01/02/2025", "Pix recebido", "500,00", ""},
		[]string{"02/02/2025", "Tarifa", "", "2,50"},
	)

	statement, err := newAdapter().Parse(context.Background(), table)
	require.NoError(t, err)
	require.Len(t, statement.Transactions, 2)
	assert.Equal(t, "01/02/2025", statement.Transactions[0].Date)
	assert.True(t, dec("500").Equal(statement.Entries))
	assert.True(t, dec("-2.5").Equal(statement.Exits))
	assert.True(t, dec("497.5").Equal(statement.Result))
}

func TestParse_MissingColumns(t *testing.T) {
	_, err := newAdapter().Parse(context.Background(), newTable([]string{"Data", "Descrição", "Valor"}))
	var extractionErr *parsererror.DataExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "entries", extractionErr.FieldName)

	_, err = newAdapter().Parse(context.Background(), newTable([]string{"Descrição", "Entradas"}))
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "date", extractionErr.FieldName)

	_, err = newAdapter().Parse(context.Background(), newTable([]string{"Data", "Saídas"}))
	assert.NoError(t, err)
}

func TestAdapter_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagseguro.csv")
	require.NoError(t, os.WriteFile(path, []byte("Data;Descrição;Entradas;Saidas\n03/02/2025;Vendas;500,00;0\n"), 0600))

	statement, err := newAdapter().ParseFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, statement.Transactions, 1)
	assert.True(t, dec("500").Equal(statement.Result))
}
