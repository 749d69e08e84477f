package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// TransactionRecord is the exported shape of a categorized transaction.
type TransactionRecord struct {
	Date        string `csv:"Data"`
	Description string `csv:"Descricao"`
	Amount      string `csv:"Valor"`
	Account     string `csv:"Conta"`
	Category    string `csv:"Categoria"`
}

// FormatCSVAmount renders amount with two decimals and a decimal comma,
// which is what spreadsheet tools expect next to a ';' delimiter.
func FormatCSVAmount(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1)
}

// ToTransactionRecords converts transactions into export records.
func ToTransactionRecords(transactions []models.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, TransactionRecord{
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      FormatCSVAmount(tx.Amount),
			Account:     tx.Account,
			Category:    tx.Category,
		})
	}
	return records
}

// WriteCSV marshals rows with gocsv into csvFile using delimiter.
func WriteCSV[T any](rows []T, csvFile string, delimiter rune, logger logging.Logger) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		return err
	}

	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Wrote CSV file",
		logging.F(logging.FieldOutput, csvFile),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}

// WriteTransactionsToCSV writes categorized transactions in the standard
// export layout.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	return WriteCSV(ToTransactionRecords(transactions), csvFile, delimiter, logger)
}
