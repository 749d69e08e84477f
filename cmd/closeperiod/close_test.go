package closeperiod

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"
	"github.com/CadoCordova/Tempero-Fechamento/internal/closing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	root.Cmd.AddCommand(Cmd)
	os.Exit(m.Run())
}

type closingReport struct {
	Period  string `json:"period"`
	Summary struct {
		Entries        decimal.Decimal `json:"entries"`
		Exits          decimal.Decimal `json:"exits"`
		ClosingBalance decimal.Decimal `json:"closing_balance"`
	} `json:"summary"`
	Transactions int `json:"transactions"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", dir)
	bankFile, processorFile, cashFile, opening, period = "", "", "", "", ""
	noExport = false

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&bytes.Buffer{})
	root.Cmd.SetArgs(append(append([]string{"close"}, args...),
		"--rules", filepath.Join(dir, "regras.yaml"),
		"--categories", filepath.Join(dir, "categorias.yaml"),
		"--log-level", "error",
	))
	err := root.Cmd.Execute()
	return out.String(), err
}

func statements(t *testing.T, dir string) (string, string) {
	t.Helper()
	bank := writeFile(t, dir, "itau.csv", "Data;Lançamento;Valor\n"+
		"31/01/2025;SALDO ANTERIOR;300,00\n"+
		"05/02/2025;SALARIO CAROLINE;1000,00\n"+
		"10/02/2025;ENERGIA ELETRICA CEEE;-200,00\n")
	processor := writeFile(t, dir, "pagseguro.csv", "Data;Tipo;Entradas;Saidas\n"+
		"12/02/2025;Venda balcao;500,00;0\n")
	return bank, processor
}

func TestCloseCommand_Flags(t *testing.T) {
	for _, name := range []string{"bank", "processor", "cash", "opening", "period", "output", "format", "no-export"} {
		assert.NotNil(t, Cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "b", Cmd.Flags().Lookup("bank").Shorthand)
	assert.Equal(t, "p", Cmd.Flags().Lookup("processor").Shorthand)
	assert.Equal(t, "s", Cmd.Flags().Lookup("opening").Shorthand)
}

func TestCloseCommand_JSONReportAndExport(t *testing.T) {
	dir := t.TempDir()
	bank, processor := statements(t, dir)
	outDir := filepath.Join(dir, "saida")

	out, err := execute(t, dir,
		"-b", bank, "-p", processor,
		"--period", "2025-02", "-s", "300,00",
		"--format", "json", "-o", outDir)
	require.NoError(t, err)

	var report closingReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "2025-02", report.Period)
	assert.True(t, decimal.NewFromInt(1500).Equal(report.Summary.Entries))
	assert.True(t, decimal.NewFromInt(-200).Equal(report.Summary.Exits))
	assert.True(t, decimal.NewFromInt(1600).Equal(report.Summary.ClosingBalance))
	assert.Equal(t, 3, report.Transactions)

	assert.FileExists(t, filepath.Join(outDir, "2025-02"+closing.TransactionsFileSuffix))
	assert.FileExists(t, filepath.Join(outDir, "2025-02"+closing.CategoriesFileSuffix))
}

func TestCloseCommand_TextReportWithCashLedger(t *testing.T) {
	dir := t.TempDir()
	bank, processor := statements(t, dir)
	writeFile(t, dir, "caixa_dinheiro_2025-02.csv", "Data;Descrição;Tipo;Valor\n"+
		"06/02/2025;Gás;Saída;80,00\n")

	out, err := execute(t, dir,
		"-b", bank, "-p", processor,
		"--period", "02/2025",
		"--format", "text", "--no-export")
	require.NoError(t, err)

	assert.Contains(t, out, "Fechamento 2025-02")
	assert.Contains(t, out, "R$ -280,00")
	assert.NoFileExists(t, filepath.Join(dir, "2025-02"+closing.TransactionsFileSuffix))
}

func TestCloseCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	bank, processor := statements(t, dir)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown format", args: []string{"-b", bank, "-p", processor, "--period", "2025-02", "--format", "pdf"}},
		{name: "missing bank file", args: []string{"-b", filepath.Join(dir, "nope.csv"), "-p", processor, "--period", "2025-02", "--format", "text"}},
		{name: "bad period", args: []string{"-b", bank, "-p", processor, "--period", "fevereiro", "--format", "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, dir, tt.args...)
			assert.Error(t, err)
		})
	}
}
