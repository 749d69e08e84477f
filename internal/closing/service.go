// Package closing runs a monthly closing: it parses the provider
// statements, categorizes every movement and consolidates the totals.
package closing

import (
	"context"
	"fmt"
	"time"

	"github.com/CadoCordova/Tempero-Fechamento/internal/dateutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categorizer labels a batch of transactions.
type Categorizer interface {
	CategorizeAll(ctx context.Context, txs []models.Transaction) []models.Transaction
}

// Request describes one closing run. CashFile is optional.
type Request struct {
	Period         string
	BankFile       string
	ProcessorFile  string
	CashFile       string
	OpeningBalance decimal.Decimal
}

// Result is everything a closing produces.
type Result struct {
	RunID        string
	Period       string
	GeneratedAt  time.Time
	Summary      models.PeriodSummary
	Accounts     []models.AccountSummary
	Categories   []models.CategorySummary
	Transactions []models.Transaction
}

// Service wires the provider adapters to the categorizer.
type Service struct {
	bank        parser.StatementParser
	processor   parser.StatementParser
	cash        parser.StatementParser
	categorizer Categorizer
	logger      logging.Logger
	now         func() time.Time
}

// NewService creates a closing service. cash may be nil when no cash
// ledger adapter is configured.
func NewService(bank, processor, cash parser.StatementParser, categorizer Categorizer, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Service{
		bank:        bank,
		processor:   processor,
		cash:        cash,
		categorizer: categorizer,
		logger:      logger,
		now:         time.Now,
	}
}

// Run parses the request files and closes the period. Any ingestion error
// aborts the run.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if req.BankFile == "" || req.ProcessorFile == "" {
		return nil, fmt.Errorf("both the bank and the processor statements are required")
	}

	bank, err := s.bank.ParseFile(ctx, req.BankFile)
	if err != nil {
		return nil, fmt.Errorf("bank statement: %w", err)
	}
	processor, err := s.processor.ParseFile(ctx, req.ProcessorFile)
	if err != nil {
		return nil, fmt.Errorf("processor statement: %w", err)
	}

	statements := []*models.Statement{bank, processor}
	if req.CashFile != "" {
		if s.cash == nil {
			return nil, fmt.Errorf("cash ledger given but no cash adapter is configured")
		}
		cash, err := s.cash.ParseFile(ctx, req.CashFile)
		if err != nil {
			return nil, fmt.Errorf("cash ledger: %w", err)
		}
		statements = append(statements, cash)
	}

	return s.Close(ctx, req.Period, req.OpeningBalance, statements...)
}

// Close categorizes and consolidates already parsed statements.
func (s *Service) Close(ctx context.Context, period string, opening decimal.Decimal, statements ...*models.Statement) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       uuid.NewString(),
		Period:      period,
		GeneratedAt: s.now(),
	}
	logger := s.logger.WithFields(
		logging.F(logging.FieldRunID, result.RunID),
		logging.F(logging.FieldPeriod, period))

	var transactions []models.Transaction
	for _, statement := range statements {
		if statement != nil {
			transactions = append(transactions, statement.Transactions...)
		}
	}

	result.Transactions = s.categorizer.CategorizeAll(ctx, transactions)
	result.Categories = Aggregate(result.Transactions)
	result.Summary, result.Accounts = Consolidate(statements, opening)

	s.warnOutsidePeriod(logger, period, result.Transactions)

	logger.Info("Period closed",
		logging.F(logging.FieldCount, len(result.Transactions)),
		logging.F("entries", result.Summary.Entries.StringFixed(2)),
		logging.F("exits", result.Summary.Exits.StringFixed(2)),
		logging.F("closing_balance", result.Summary.ClosingBalance.StringFixed(2)))
	return result, nil
}

// warnOutsidePeriod logs movements dated outside the closing month. They
// are kept in the totals.
func (s *Service) warnOutsidePeriod(logger logging.Logger, period string, transactions []models.Transaction) {
	start, err := dateutils.ParsePeriod(period)
	if err != nil {
		return
	}

	outside := 0
	for _, tx := range transactions {
		date, err := dateutils.ParseDate(tx.Date)
		if err == nil && !dateutils.InPeriod(date, start) {
			outside++
		}
	}
	if outside > 0 {
		logger.Warn("Transactions dated outside the closing period",
			logging.F(logging.FieldCount, outside),
			logging.F("period_start", start.Format(dateutils.DateLayoutBR)),
			logging.F("period_end", dateutils.EndOfMonth(start).Format(dateutils.DateLayoutBR)))
	}
}
