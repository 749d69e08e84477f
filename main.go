package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/categories"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/categorize"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/closeperiod"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/learn"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"
	"github.com/CadoCordova/Tempero-Fechamento/cmd/rules"
	"github.com/CadoCordova/Tempero-Fechamento/internal/config"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
)

func init() {
	// .env is read before anything logs so FECHAMENTO_* and LOG_LEVEL apply
	// from the first line.
	_, _ = config.LoadEnv(".env", filepath.Join("..", ".env"))
	logging.SetGlobalLevel(config.GetEnv("LOG_LEVEL", "info"))

	root.Init()

	root.Cmd.AddCommand(closeperiod.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(learn.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
