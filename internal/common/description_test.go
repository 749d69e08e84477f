package common

import (
	"testing"

	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"

	"github.com/stretchr/testify/assert"
)

func row(columns []string, cells ...string) tabular.Row {
	return tabular.NewRow(columns, cells)
}

func TestSynthesizeDescription(t *testing.T) {
	tests := []struct {
		name     string
		row      tabular.Row
		expected string
	}{
		{
			name:     "literal description wins",
			row:      row([]string{"description", "Histórico"}, "PRE LABELED", "IGNORED"),
			expected: "PRE LABELED",
		},
		{
			name:     "literal descricao wins",
			row:      row([]string{"Data", "descricao"}, "01/02", "ALUGUEL"),
			expected: "ALUGUEL",
		},
		{
			name:     "blank literal falls through",
			row:      row([]string{"description", "Histórico"}, "  ", "PIX RECEBIDO"),
			expected: "PIX RECEBIDO",
		},
		{
			name:     "history then other columns",
			row:      row([]string{"Data", "Lançamento", "Histórico", "Valor", "Agência"}, "01/02", "PIX", "RICARDO", "10,00", "0503"),
			expected: "RICARDO | PIX | 0503",
		},
		{
			name:     "description columns in column order",
			row:      row([]string{"Descrição", "Histórico Complementar"}, " CEEE ", "ENERGIA"),
			expected: "CEEE | ENERGIA",
		},
		{
			name:     "ignored columns are skipped",
			row:      row([]string{"DATA", "Débito (-)", "Crédito (+)", "Saldo", "Entradas", "Saídas", "Valores"}, "01/02", "1", "2", "3", "4", "5", "6"),
			expected: "",
		},
		{
			name:     "duplicates collected once",
			row:      row([]string{"Histórico", "Documento", "Observação"}, "TED", "TED", "123"),
			expected: "TED | 123",
		},
		{
			name:     "nothing usable",
			row:      row([]string{"Data", "Valor"}, "01/02", "100"),
			expected: "",
		},
		{
			name:     "absent cells are ignored",
			row:      row([]string{"Histórico", "Tipo"}, "VENDA"),
			expected: "VENDA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SynthesizeDescription(tt.row))
		})
	}
}

func TestFirstPresent(t *testing.T) {
	columns := []string{"VALOR", "Valor (R$)", "Debito"}

	value, column, ok := FirstPresent(row(columns, "", "0", "50"), "Valor", "VALOR", "Valor (R$)")
	assert.True(t, ok)
	assert.Equal(t, "0", value, "an explicit zero is a present value")
	assert.Equal(t, "Valor (R$)", column)

	_, _, ok = FirstPresent(row(columns, " ", ""), "Valor", "VALOR", "Valor (R$)")
	assert.False(t, ok)
}

func TestColumnHelpers(t *testing.T) {
	columns := []string{"Data", "Débito", "Crédito", "Débito Automático"}

	assert.Equal(t, []string{"Débito", "Débito Automático"}, ColumnsContaining(columns, "DEBITO"))
	assert.Empty(t, ColumnsContaining(columns, "SALDO"))
	assert.True(t, HasAnyColumn(columns, "DATA", "Data"))
	assert.False(t, HasAnyColumn(columns, "Valor"))
}
