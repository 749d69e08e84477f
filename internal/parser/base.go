package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/currencyutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"

	"github.com/shopspring/decimal"
)

// BaseParser carries what every adapter shares: logger, table reader,
// account label and amount policy. Adapters embed it:
//
//	type Adapter struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	name    string
	account string
	strict  bool
	logger  logging.Logger
	reader  *tabular.Reader
}

// NewBaseParser builds a BaseParser. defaultAccount is used when
// opts.Account is empty; a nil reader gets a ';' delimited one.
func NewBaseParser(name, defaultAccount string, opts Options, reader *tabular.Reader, logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if reader == nil {
		reader = tabular.NewReader(tabular.DefaultDelimiter, logger)
	}
	account := strings.TrimSpace(opts.Account)
	if account == "" {
		account = defaultAccount
	}
	return BaseParser{
		name:    name,
		account: account,
		strict:  opts.StrictAmounts,
		logger:  logger.WithField(logging.FieldParser, name),
		reader:  reader,
	}
}

// Name returns the adapter name.
func (b *BaseParser) Name() string {
	return b.name
}

// Account returns the label stamped on transactions.
func (b *BaseParser) Account() string {
	return b.account
}

// GetLogger returns the adapter logger.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// SetLogger replaces the adapter logger.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger.WithField(logging.FieldParser, b.name)
	}
}

// ParseAmount reads a cell using the configured amount policy. In lenient
// mode a garbled cell is logged and counted as zero, so the movement stays
// visible for manual correction.
func (b *BaseParser) ParseAmount(raw, column string) (decimal.Decimal, error) {
	amount, err := currencyutils.ParseLocaleAmountStrict(raw)
	if err == nil {
		return amount, nil
	}
	if b.strict {
		return decimal.Zero, &parsererror.ParseError{
			Parser: b.name,
			Field:  column,
			Value:  raw,
			Err:    err,
		}
	}
	b.logger.Warn("Unparseable amount counted as zero",
		logging.F(logging.FieldColumn, column),
		logging.F("value", raw))
	return decimal.Zero, nil
}

// ParseFileWith loads filePath and hands the table to parse.
func (b *BaseParser) ParseFileWith(
	ctx context.Context,
	filePath string,
	parse func(context.Context, *tabular.Table) (*models.Statement, error),
) (*models.Statement, error) {
	b.logger.Info("Parsing statement file", logging.F(logging.FieldFile, filePath))

	table, err := b.reader.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}

	statement, err := parse(ctx, table)
	if err != nil {
		return nil, err
	}

	b.logger.Info("Statement parsed",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldAccount, statement.Account),
		logging.F(logging.FieldCount, len(statement.Transactions)))
	return statement, nil
}

// RequireColumn returns a DataExtractionError unless one of aliases is in
// the table header.
func RequireColumn(table *tabular.Table, field string, aliases ...string) error {
	for _, column := range table.Columns {
		for _, alias := range aliases {
			if column == alias {
				return nil
			}
		}
	}
	return &parsererror.DataExtractionError{
		FilePath:  table.Source,
		FieldName: field,
		Reason:    fmt.Sprintf("none of the columns %q found in header %q", aliases, table.Columns),
	}
}
