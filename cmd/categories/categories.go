// Package categories manages the category list offered when learning rules.
package categories

import (
	"fmt"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/common"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List or extend the known categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in and custom categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}

		builtin := len(models.DefaultCategories())
		for i, name := range common.KnownCategories(c.GetCategoryStore().List()) {
			if i >= builtin {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (personalizada)\n", name)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a custom category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}

		categories := c.GetCategoryStore()
		name := strings.TrimSpace(args[0])
		if common.IsKnownCategory(name, nil) {
			fmt.Fprintf(cmd.OutOrStdout(), "Categoria já existe: %s\n", name)
			return nil
		}

		added, err := categories.Add(name)
		if err != nil {
			return err
		}
		if !added {
			fmt.Fprintf(cmd.OutOrStdout(), "Categoria já existe: %s\n", name)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Categoria adicionada: %s\n", name)
		return nil
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
}
