package bankparser

import (
	"context"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
)

// Adapter implements parser.StatementParser for bank statements.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a bank adapter. The account defaults to models.AccountBank.
func NewAdapter(opts parser.Options, reader *tabular.Reader, logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(ParserName, models.AccountBank, opts, reader, logger),
	}
}

// Parse implements parser.Parser.
func (a *Adapter) Parse(ctx context.Context, table *tabular.Table) (*models.Statement, error) {
	return Parse(ctx, table, &a.BaseParser)
}

// ParseFile implements parser.FileParser.
func (a *Adapter) ParseFile(ctx context.Context, filePath string) (*models.Statement, error) {
	return a.ParseFileWith(ctx, filePath, a.Parse)
}

var _ parser.StatementParser = (*Adapter)(nil)
