// Package factory builds statement adapters by provider type.
package factory

import (
	"fmt"

	"github.com/CadoCordova/Tempero-Fechamento/internal/bankparser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/cashparser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/processorparser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	Bank      ParserType = "bank"
	Processor ParserType = "processor"
	Cash      ParserType = "cash"
)

// ParserTypes lists every supported provider in closing order.
var ParserTypes = []ParserType{Bank, Processor, Cash}

// GetParser returns a new adapter for parserType. reader and logger may be
// nil, in which case the adapter builds its defaults.
func GetParser(parserType ParserType, opts parser.Options, reader *tabular.Reader, logger logging.Logger) (parser.StatementParser, error) {
	switch parserType {
	case Bank:
		return bankparser.NewAdapter(opts, reader, logger), nil
	case Processor:
		return processorparser.NewAdapter(opts, reader, logger), nil
	case Cash:
		return cashparser.NewAdapter(opts, reader, logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
