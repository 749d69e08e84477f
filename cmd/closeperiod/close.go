// Package closeperiod implements the monthly closing command.
package closeperiod

import (
	"fmt"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/common"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"
	"github.com/CadoCordova/Tempero-Fechamento/internal/report"
	"github.com/CadoCordova/Tempero-Fechamento/internal/validation"

	"github.com/spf13/cobra"
)

var (
	bankFile      string
	processorFile string
	cashFile      string
	opening       string
	period        string
	noExport      bool
)

// Cmd represents the close command
var Cmd = &cobra.Command{
	Use:   "close",
	Short: "Close a month from the bank, processor and cash statements",
	Long: `Reads the bank statement, the card processor sales report and, when present,
the cash ledger of a month, categorizes every movement and prints the
consolidated closing. The categorized transactions and the per-category
breakdown are exported as CSV files into the output directory.

The cash ledger defaults to caixa_dinheiro_<period>.xlsx next to the bank
statement.`,
	Example: `  fechamento close -b extrato_itau.csv -p vendas_pagseguro.xlsx --period 2025-01 -s 1.500,00`,
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&bankFile, "bank", "b", "", "Bank statement (.csv or .xlsx)")
	flags.StringVarP(&processorFile, "processor", "p", "", "Card processor sales report (.csv or .xlsx)")
	flags.StringVarP(&cashFile, "cash", "c", "", "Cash ledger (default: caixa_dinheiro_<period>.xlsx next to the bank statement)")
	flags.StringVarP(&opening, "opening", "s", "", "Opening balance, e.g. 1.500,00")
	flags.StringVar(&period, "period", "", "Month being closed, YYYY-MM (default: current month)")
	flags.StringP("output", "o", "", "Directory of the exported CSV files")
	flags.String("format", "", "Report format (text or json)")
	flags.BoolVar(&noExport, "no-export", false, "Print the report without exporting CSV files")

	_ = Cmd.MarkFlagRequired("bank")
	_ = Cmd.MarkFlagRequired("processor")

	root.BindFlag("output.dir", flags.Lookup("output"))
	root.BindFlag("output.format", flags.Lookup("format"))
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	cfg := c.GetConfig()
	log := c.GetLogger()

	if err := validation.IsValidOutputFormat(cfg.Output.Format, report.Formats); err != nil {
		return err
	}

	log.Info("Closing period")
	written, err := common.ProcessClose(cmd.Context(), c.GetClosingService(), c.GetReportGenerator(), common.CloseOptions{
		Period:        period,
		BankFile:      bankFile,
		ProcessorFile: processorFile,
		CashFile:      cashFile,
		Opening:       opening,
		OutputDir:     cfg.Output.Dir,
		Format:        cfg.Output.Format,
		Delimiter:     cfg.ExportDelimiter(),
		Export:        !noExport,
	}, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintf(cmd.ErrOrStderr(), "Arquivo gerado: %s\n", path)
	}
	return nil
}
