// Package rules lists the learned categorization rules.
package rules

import (
	"fmt"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "List the learned categorization rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		learned := c.GetCategorizer().Rules()
		if len(learned) == 0 {
			fmt.Fprintf(out, "Nenhuma regra aprendida em %s\n", c.GetRuleStore().Path())
			return nil
		}
		for _, rule := range learned {
			fmt.Fprintf(out, "%s -> %s\n", rule.Pattern, rule.Category)
		}
		return nil
	},
}
