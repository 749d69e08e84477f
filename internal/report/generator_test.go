package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/CadoCordova/Tempero-Fechamento/internal/closing"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleResult() *closing.Result {
	return &closing.Result{
		RunID:       "6f1c2a4e-0000-4000-8000-000000000001",
		Period:      "2025-02",
		GeneratedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Summary:     models.NewPeriodSummary(dec("1500"), dec("-200"), dec("300")),
		Accounts: []models.AccountSummary{
			{Account: models.AccountBank, Entries: dec("1000"), Exits: dec("-200"), Result: dec("800")},
			{Account: models.AccountProcessor, Entries: dec("500"), Exits: decimal.Zero, Result: dec("500")},
		},
		Categories: []models.CategorySummary{
			{Category: models.CategoryEnergy, Entries: decimal.Zero, Exits: dec("-200")},
			{Category: models.CategoryPayroll, Entries: dec("1000"), Exits: decimal.Zero},
			{Category: models.CategorySales, Entries: dec("500"), Exits: decimal.Zero},
		},
		Transactions: make([]models.Transaction, 3),
	}
}

func TestReportGenerator_GenerateReport_Text(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())

	out, err := generator.GenerateReport(sampleResult(), FormatText)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Fechamento 2025-02")
	assert.Contains(t, text, "Entradas totais : R$ 1.500,00")
	assert.Contains(t, text, "Saídas totais   : R$ -200,00")
	assert.Contains(t, text, "Saldo final     : R$ 1.600,00")
	assert.Contains(t, text, "Folha de Pagamento")
	assert.Contains(t, text, "R$ 1.000,00")
}

func TestReportGenerator_GenerateReport_JSON(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())

	out, err := generator.GenerateReport(sampleResult(), FormatJSON)
	require.NoError(t, err)

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "2025-02", decoded.Period)
	assert.True(t, dec("1600").Equal(decoded.Summary.ClosingBalance))
	assert.Len(t, decoded.Accounts, 2)
	require.Len(t, decoded.Categories, 3)
	assert.True(t, dec("-200").Equal(decoded.Categories[0].Net))
	assert.Equal(t, 3, decoded.Transactions)
}

func TestReportGenerator_GenerateReport_Errors(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())

	_, err := generator.GenerateReport(sampleResult(), "xml")
	assert.EqualError(t, err, "unsupported report format: xml")

	_, err = generator.GenerateReport(nil, FormatText)
	assert.Error(t, err)
}

func TestReportGenerator_EmptyCategories(t *testing.T) {
	result := sampleResult()
	result.Categories = nil

	out, err := NewReportGenerator(logging.NewMockLogger()).GenerateReport(result, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(out), "(nenhuma movimentação)")
}
