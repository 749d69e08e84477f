package integration

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/CadoCordova/Tempero-Fechamento/internal/closing"
	"github.com/CadoCordova/Tempero-Fechamento/internal/common"
	"github.com/CadoCordova/Tempero-Fechamento/internal/config"
	"github.com/CadoCordova/Tempero-Fechamento/internal/container"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newContainer(t *testing.T, dir string) *container.Container {
	t.Helper()
	t.Setenv("HOME", dir)
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	cfg.Rules.File = filepath.Join(dir, "regras_categorias.yaml")
	cfg.Categories.File = filepath.Join(dir, "categorias_personalizadas.yaml")

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, c.Close()) })
	return c
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func writeSpreadsheet(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		line := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &line))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return writeFile(t, dir, name, buf.String())
}

func readExport(t *testing.T, path string) []common.TransactionRecord {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	var records []common.TransactionRecord
	require.NoError(t, gocsv.UnmarshalCSV(reader, &records))
	return records
}

func inputs(t *testing.T, dir string) closing.Request {
	t.Helper()
	return closing.Request{
		Period: "2025-02",
		BankFile: writeFile(t, dir, "extrato_itau.csv", "Data;Lançamento;Valor\n"+
			"01/02/2025;SALDO ANTERIOR;1.000,00\n"+
			"03/02/2025;PIX ENVIADO LOJA XYZ;-150,00\n"+
			"04/02/2025;DARF SIMPLES NACIONAL;-420,10\n"+
			"04/02/2025;SALDO TOTAL DISPONÍVEL DIA;429,90\n"),
		ProcessorFile: writeSpreadsheet(t, dir, "vendas_pagseguro.xlsx", [][]interface{}{
			{"Data", "Tipo", "Entradas", "Saidas"},
			{"02/02/2025", "Vendas", 2500.75, 0},
			{"02/02/2025", "Tarifas", 0, 87.5},
			{"02/02/2025", "SALDO DO DIA", 2413.25, 0},
		}),
		CashFile: writeFile(t, dir, "caixa_dinheiro_2025-02.csv", "Data;Descrição;Tipo;Valor\n"+
			"05/02/2025;Motoboy sexta;Saída;60,00\n"),
		OpeningBalance: decimal.RequireFromString("1000"),
	}
}

func TestClosing_AllProviders(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	c := newContainer(t, dir)

	result, err := c.GetClosingService().Run(context.Background(), inputs(t, dir))
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("2500.75").Equal(result.Summary.Entries), result.Summary.Entries.String())
	assert.True(t, decimal.RequireFromString("-717.6").Equal(result.Summary.Exits), result.Summary.Exits.String())
	assert.True(t, decimal.RequireFromString("2783.15").Equal(result.Summary.ClosingBalance))
	require.Len(t, result.Accounts, 3)

	written, err := closing.WriteResult(result, filepath.Join(dir, "saida"), c.GetConfig().ExportDelimiter(), c.GetLogger())
	require.NoError(t, err)

	records := readExport(t, written[0])
	require.Len(t, records, 5)
	accounts := map[string]bool{}
	for _, r := range records {
		accounts[r.Account] = true
		assert.NotEmpty(t, r.Category, r.Description)
	}
	assert.Len(t, accounts, 3)

	byDescription := map[string]common.TransactionRecord{}
	for _, r := range records {
		byDescription[r.Description] = r
	}
	assert.Equal(t, models.CategoryTaxes, byDescription["DARF SIMPLES NACIONAL"].Category)
	assert.Equal(t, models.CategorySuppliers, byDescription["PIX ENVIADO LOJA XYZ"].Category)
	assert.Equal(t, models.CategoryDelivery, byDescription["Motoboy sexta"].Category)
	assert.Equal(t, "-420,10", byDescription["DARF SIMPLES NACIONAL"].Amount)
}

func TestClosing_LearnedRuleSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	first := newContainer(t, dir)
	_, err := first.GetCategorizer().Learn("pix enviado loja xyz", models.CategoryRent)
	require.NoError(t, err)

	second := newContainer(t, dir)
	result, err := second.GetClosingService().Run(context.Background(), inputs(t, dir))
	require.NoError(t, err)

	var found bool
	for _, tx := range result.Transactions {
		if tx.Description == "PIX ENVIADO LOJA XYZ" {
			found = true
			assert.Equal(t, models.CategoryRent, tx.Category)
		}
	}
	assert.True(t, found)
}
