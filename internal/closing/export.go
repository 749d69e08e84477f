package closing

import (
	"fmt"
	"path/filepath"

	"github.com/CadoCordova/Tempero-Fechamento/internal/common"
	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
)

// Output file suffixes, prefixed with the period name.
const (
	TransactionsFileSuffix = "_transacoes.csv"
	CategoriesFileSuffix   = "_categorias.csv"
)

// CategoryRecord is the exported shape of a category breakdown line.
type CategoryRecord struct {
	Category string `csv:"Categoria"`
	Entries  string `csv:"Entradas"`
	Exits    string `csv:"Saidas"`
	Net      string `csv:"Resultado"`
}

// WriteCategorySummaryCSV writes the category breakdown.
func WriteCategorySummaryCSV(summaries []models.CategorySummary, csvFile string, delimiter rune, logger logging.Logger) error {
	records := make([]CategoryRecord, 0, len(summaries))
	for _, summary := range summaries {
		records = append(records, CategoryRecord{
			Category: summary.Category,
			Entries:  common.FormatCSVAmount(summary.Entries),
			Exits:    common.FormatCSVAmount(summary.Exits),
			Net:      common.FormatCSVAmount(summary.Net()),
		})
	}
	return common.WriteCSV(records, csvFile, delimiter, logger)
}

// WriteResult exports the transactions and the category breakdown of
// result into dir and returns the written paths.
func WriteResult(result *Result, dir string, delimiter rune, logger logging.Logger) ([]string, error) {
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, err
	}

	prefix := fileutils.SafeFileName(result.Period)
	transactionsFile := filepath.Join(dir, prefix+TransactionsFileSuffix)
	categoriesFile := filepath.Join(dir, prefix+CategoriesFileSuffix)

	transactions := result.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if err := common.WriteTransactionsToCSV(transactions, transactionsFile, delimiter, logger); err != nil {
		return nil, fmt.Errorf("error exporting transactions: %w", err)
	}
	if err := WriteCategorySummaryCSV(result.Categories, categoriesFile, delimiter, logger); err != nil {
		return nil, fmt.Errorf("error exporting categories: %w", err)
	}
	return []string{transactionsFile, categoriesFile}, nil
}
