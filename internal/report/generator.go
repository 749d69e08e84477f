// Package report renders a closing result for people (text) and for other
// tools (JSON).
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/CadoCordova/Tempero-Fechamento/internal/closing"
	"github.com/CadoCordova/Tempero-Fechamento/internal/currencyutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"

	"github.com/shopspring/decimal"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists the accepted values of the report format option.
var Formats = []string{FormatText, FormatJSON}

// ReportGenerator renders closing results.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a generator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{logger: logger.WithField("component", "ReportGenerator")}
}

// GenerateReport renders result in format (text or json).
func (g *ReportGenerator) GenerateReport(result *closing.Result, format string) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no closing result to report")
	}
	switch format {
	case FormatText, "":
		return g.generateTextReport(result)
	case FormatJSON:
		return g.generateJSONReport(result)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

type jsonSummary struct {
	Entries        decimal.Decimal `json:"entries"`
	Exits          decimal.Decimal `json:"exits"`
	NetResult      decimal.Decimal `json:"net_result"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

type jsonAccount struct {
	Account string          `json:"account"`
	Entries decimal.Decimal `json:"entries"`
	Exits   decimal.Decimal `json:"exits"`
	Result  decimal.Decimal `json:"result"`
}

type jsonCategory struct {
	Category string          `json:"category"`
	Entries  decimal.Decimal `json:"entries"`
	Exits    decimal.Decimal `json:"exits"`
	Net      decimal.Decimal `json:"net"`
}

type jsonReport struct {
	RunID        string         `json:"run_id"`
	Period       string         `json:"period"`
	GeneratedAt  time.Time      `json:"generated_at"`
	Summary      jsonSummary    `json:"summary"`
	Accounts     []jsonAccount  `json:"accounts"`
	Categories   []jsonCategory `json:"categories"`
	Transactions int            `json:"transactions"`
}

func (g *ReportGenerator) generateJSONReport(result *closing.Result) ([]byte, error) {
	out := jsonReport{
		RunID:       result.RunID,
		Period:      result.Period,
		GeneratedAt: result.GeneratedAt,
		Summary: jsonSummary{
			Entries:        result.Summary.Entries,
			Exits:          result.Summary.Exits,
			NetResult:      result.Summary.NetResult,
			OpeningBalance: result.Summary.OpeningBalance,
			ClosingBalance: result.Summary.ClosingBalance,
		},
		Accounts:     make([]jsonAccount, 0, len(result.Accounts)),
		Categories:   make([]jsonCategory, 0, len(result.Categories)),
		Transactions: len(result.Transactions),
	}
	for _, a := range result.Accounts {
		out.Accounts = append(out.Accounts, jsonAccount{Account: a.Account, Entries: a.Entries, Exits: a.Exits, Result: a.Result})
	}
	for _, c := range result.Categories {
		out.Categories = append(out.Categories, jsonCategory{Category: c.Category, Entries: c.Entries, Exits: c.Exits, Net: c.Net()})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

func (g *ReportGenerator) generateTextReport(result *closing.Result) ([]byte, error) {
	brl := currencyutils.FormatBRL
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Fechamento %s\n", result.Period)
	if result.RunID != "" {
		fmt.Fprintf(&buf, "Execução %s\n", result.RunID)
	}

	buf.WriteString("\nContas\n")
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Conta\tEntradas\tSaídas\tResultado\t")
	for _, a := range result.Accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", a.Account, brl(a.Entries), brl(a.Exits), brl(a.Result))
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	s := result.Summary
	buf.WriteString("\nConsolidado\n")
	w = tabwriter.NewWriter(&buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "Entradas totais\t: %s\n", brl(s.Entries))
	fmt.Fprintf(w, "Saídas totais\t: %s\n", brl(s.Exits))
	fmt.Fprintf(w, "Resultado\t: %s\n", brl(s.NetResult))
	fmt.Fprintf(w, "Saldo inicial\t: %s\n", brl(s.OpeningBalance))
	fmt.Fprintf(w, "Saldo final\t: %s\n", brl(s.ClosingBalance))
	if err := w.Flush(); err != nil {
		return nil, err
	}

	buf.WriteString("\nCategorias\n")
	if len(result.Categories) == 0 {
		buf.WriteString("(nenhuma movimentação)\n")
		return buf.Bytes(), nil
	}
	w = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Categoria\tEntradas\tSaídas\tResultado\t")
	for _, c := range result.Categories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", c.Category, brl(c.Entries), brl(c.Exits), brl(c.Net()))
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
