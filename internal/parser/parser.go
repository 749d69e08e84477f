// Package parser defines the interfaces implemented by the statement
// adapters and the base type they embed.
package parser

import (
	"context"

	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
)

// Parser turns an already loaded table into a statement.
// Implementations return *parsererror.DataExtractionError when a required
// column is missing and *parsererror.ParseError for bad amounts in strict
// mode.
type Parser interface {
	Parse(ctx context.Context, table *tabular.Table) (*models.Statement, error)
}

// FileParser reads the statement file itself before parsing it.
type FileParser interface {
	Parser
	ParseFile(ctx context.Context, filePath string) (*models.Statement, error)
}

// StatementParser is the full adapter contract used by the container.
type StatementParser interface {
	FileParser
	// Name identifies the adapter in logs and errors.
	Name() string
	// Account is the label stamped on every transaction.
	Account() string
}

// Options configure an adapter.
type Options struct {
	// Account overrides the default account label.
	Account string
	// StrictAmounts makes unparseable amount cells abort the run instead
	// of counting as zero.
	StrictAmounts bool
}
