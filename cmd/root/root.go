// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"github.com/CadoCordova/Tempero-Fechamento/internal/config"
	"github.com/CadoCordova/Tempero-Fechamento/internal/container"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies of the running command.
	AppContainer *container.Container

	// ConfigFile is the --config flag value.
	ConfigFile string

	settings = config.NewViper()
	initOnce sync.Once

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fechamento",
		Short: "Monthly cash closing for a small restaurant.",
		Long: `fechamento reads the bank, card processor and cash ledger statements of a
month, categorizes every movement and prints the consolidated closing with a
per-category breakdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer == nil {
				return nil
			}
			return AppContainer.Close()
		},
	}
)

// Init registers the persistent flags and binds them to the configuration
// keys. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVar(&ConfigFile, "config", "", "Config file (default: ./fechamento.yaml or $HOME/.fechamento/fechamento.yaml)")
		flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		flags.String("log-format", "text", "Log format (text or json)")
		flags.String("rules", "", "Learned rules file (.yaml or .json)")
		flags.String("categories", "", "Custom categories file (.yaml or .json)")
		flags.String("delimiter", "", "Delimiter of the CSV statements")
		flags.Bool("strict", false, "Fail on unparseable amounts instead of counting them as zero")

		bindFlag(settings, "log.level", flags.Lookup("log-level"))
		bindFlag(settings, "log.format", flags.Lookup("log-format"))
		bindFlag(settings, "rules.file", flags.Lookup("rules"))
		bindFlag(settings, "categories.file", flags.Lookup("categories"))
		bindFlag(settings, "csv.delimiter", flags.Lookup("delimiter"))
		bindFlag(settings, "amounts.strict", flags.Lookup("strict"))
	})
}

// Settings exposes the viper instance so subcommands can bind their own
// flags to configuration keys.
func Settings() *viper.Viper {
	return settings
}

// Setup loads the configuration and builds the container.
func Setup() error {
	cfg, err := config.Load(settings, ConfigFile)
	if err != nil {
		return err
	}
	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the container built by Setup.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	return AppContainer, nil
}
