// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/CadoCordova/Tempero-Fechamento/internal/closing"
	"github.com/CadoCordova/Tempero-Fechamento/internal/currencyutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/dateutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/validation"

	"github.com/shopspring/decimal"
)

// CashLedgerPrefix names the cash ledger file of a period:
// caixa_dinheiro_<period>.xlsx.
const CashLedgerPrefix = "caixa_dinheiro_"

// Closer runs a closing. *closing.Service implements it.
type Closer interface {
	Run(ctx context.Context, req closing.Request) (*closing.Result, error)
}

// Reporter renders a closing result.
type Reporter interface {
	GenerateReport(result *closing.Result, format string) ([]byte, error)
}

// CloseOptions carries the close command flags.
type CloseOptions struct {
	Period        string
	BankFile      string
	ProcessorFile string
	CashFile      string
	Opening       string
	OutputDir     string
	Format        string
	Delimiter     rune
	Export        bool
}

// ProcessClose validates opts, runs the closing, writes the report to out
// and, when requested, exports the CSV files. It returns the exported paths.
func ProcessClose(ctx context.Context, closer Closer, reporter Reporter, opts CloseOptions, out io.Writer, log logging.Logger) ([]string, error) {
	period, err := NormalizePeriod(opts.Period)
	if err != nil {
		return nil, err
	}

	opening, err := ParseAmount(opts.Opening)
	if err != nil {
		return nil, fmt.Errorf("invalid opening balance: %w", err)
	}

	cashFile := ResolveCashFile(opts.CashFile, period, filepath.Dir(opts.BankFile))
	if cashFile != "" && opts.CashFile == "" {
		log.Info("Using cash ledger found next to the bank statement", logging.F(logging.FieldFile, cashFile))
	}

	inputs := []string{opts.BankFile, opts.ProcessorFile}
	if cashFile != "" {
		inputs = append(inputs, cashFile)
	}
	for _, file := range inputs {
		if err := validation.IsValidInputFile(file); err != nil {
			return nil, err
		}
	}

	result, err := closer.Run(ctx, closing.Request{
		Period:         period,
		BankFile:       opts.BankFile,
		ProcessorFile:  opts.ProcessorFile,
		CashFile:       cashFile,
		OpeningBalance: opening,
	})
	if err != nil {
		return nil, err
	}

	report, err := reporter.GenerateReport(result, opts.Format)
	if err != nil {
		return nil, err
	}
	if _, err := out.Write(report); err != nil {
		return nil, fmt.Errorf("error writing report: %w", err)
	}

	if !opts.Export {
		return nil, nil
	}
	return closing.WriteResult(result, opts.OutputDir, opts.Delimiter, log)
}

// NormalizePeriod returns the canonical YYYY-MM form of period. An empty
// period is the current month.
func NormalizePeriod(period string) (string, error) {
	if strings.TrimSpace(period) == "" {
		return dateutils.CurrentPeriod(time.Now()), nil
	}
	start, err := dateutils.ParsePeriod(period)
	if err != nil {
		return "", err
	}
	return dateutils.FormatPeriod(start), nil
}

// ParseAmount parses an amount typed on the command line, in Brazilian
// ("1.234,56") or plain ("1234.56") notation. Empty means zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return currencyutils.ParseLocaleAmountStrict(raw)
}

// ResolveCashFile returns explicit when set. Otherwise it looks for the
// period's cash ledger in dir and returns "" when there is none.
func ResolveCashFile(explicit, period, dir string) string {
	if explicit != "" {
		return explicit
	}
	for _, ext := range []string{".xlsx", ".csv"} {
		candidate := filepath.Join(dir, CashLedgerPrefix+period+ext)
		if fileutils.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// KnownCategories returns the built-in categories followed by the custom
// ones, without duplicates.
func KnownCategories(custom []string) []string {
	known := models.DefaultCategories()
	seen := make(map[string]bool, len(known)+len(custom))
	for _, name := range known {
		seen[name] = true
	}
	for _, name := range custom {
		if !seen[name] {
			seen[name] = true
			known = append(known, name)
		}
	}
	return known
}

// IsKnownCategory reports whether name is a built-in or custom category.
func IsKnownCategory(name string, custom []string) bool {
	for _, known := range KnownCategories(custom) {
		if known == name {
			return true
		}
	}
	return false
}
