package processorparser

import (
	"context"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
)

// Adapter implements parser.StatementParser for processor statements.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a processor adapter. The account defaults to
// models.AccountProcessor.
func NewAdapter(opts parser.Options, reader *tabular.Reader, logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(ParserName, models.AccountProcessor, opts, reader, logger),
	}
}

func (a *Adapter) Parse(ctx context.Context, table *tabular.Table) (*models.Statement, error) {
	return Parse(ctx, table, &a.BaseParser)
}

func (a *Adapter) ParseFile(ctx context.Context, filePath string) (*models.Statement, error) {
	return a.ParseFileWith(ctx, filePath, a.Parse)
}

var _ parser.StatementParser = (*Adapter)(nil)
