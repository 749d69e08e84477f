// Package categorize handles the single-transaction categorization command
package categorize

import (
	"fmt"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/common"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"github.com/spf13/cobra"
)

var (
	description string
	amount      string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Runs a description through the categorizer chain (learned rules, keyword
table, amount sign) and prints the category with the strategy that chose it.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Signed transaction amount (optional)")
	_ = Cmd.MarkFlagRequired("description")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	value, err := common.ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	tx := models.NewTransaction("", description, value, "")
	category := c.GetCategorizer().Categorize(cmd.Context(), tx)
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", category.Name, category.Source)
	return nil
}
