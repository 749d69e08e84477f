// Package learn implements the command that teaches the categorizer a new
// description rule.
package learn

import (
	"fmt"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/common"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"

	"github.com/spf13/cobra"
)

var (
	description string
	category    string
)

// Cmd represents the learn command
var Cmd = &cobra.Command{
	Use:   "learn",
	Short: "Remember the category of a description",
	Long: `Stores the normalized description as a learned rule. Learned rules are
checked before the keyword table, so the next closing assigns the category
to every transaction whose description contains the pattern.

The category must be a built-in one or have been added with
'fechamento categories add'.`,
	Example: `  fechamento learn -d "PIX ENVIADO LOJA XYZ" -c "Fornecedores e Insumos"`,
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Description to learn")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category to assign")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("category")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(category)
	if !common.IsKnownCategory(name, c.GetCategoryStore().List()) {
		return fmt.Errorf("unknown category %q: add it first with 'fechamento categories add'", name)
	}

	rule, err := c.GetCategorizer().Learn(description, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", rule.Pattern, rule.Category)
	return nil
}
