// Package container wires the application dependencies. Everything that
// needs a logger, the configuration or the rule table receives it from
// here, so no package keeps global state.
package container

import (
	"fmt"

	"github.com/CadoCordova/Tempero-Fechamento/internal/categorizer"
	"github.com/CadoCordova/Tempero-Fechamento/internal/closing"
	"github.com/CadoCordova/Tempero-Fechamento/internal/config"
	"github.com/CadoCordova/Tempero-Fechamento/internal/factory"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parser"
	"github.com/CadoCordova/Tempero-Fechamento/internal/report"
	"github.com/CadoCordova/Tempero-Fechamento/internal/store"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
)

// ParserType names a statement provider.
type ParserType = factory.ParserType

const (
	Bank      = factory.Bank
	Processor = factory.Processor
	Cash      = factory.Cash
)

// Container holds the wired dependencies. Fields are private; use the
// getters.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	reader      *tabular.Reader
	rules       *store.RuleStore
	categories  *store.CategoryListStore
	categorizer *categorizer.Categorizer
	closing     *closing.Service
	reports     *report.ReportGenerator

	parsers map[ParserType]parser.StatementParser
}

// NewContainer creates and wires all application dependencies, building
// the logger from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.NewLogger(cfg))
}

// NewContainerWithLogger is NewContainer with a caller supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	rules := store.NewRuleStore(cfg.Rules.File, logger)
	if err := rules.Load(); err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	categories := store.NewCategoryListStore(cfg.Categories.File, logger)
	if err := categories.Load(); err != nil {
		return nil, fmt.Errorf("failed to load custom categories: %w", err)
	}

	cat := categorizer.NewCategorizer(rules, logger)
	reader := tabular.NewReader(cfg.InputDelimiter(), logger)

	accounts := map[ParserType]string{
		Bank:      cfg.Accounts.Bank,
		Processor: cfg.Accounts.Processor,
		Cash:      cfg.Accounts.Cash,
	}
	parsers := make(map[ParserType]parser.StatementParser, len(factory.ParserTypes))
	for _, pt := range factory.ParserTypes {
		p, err := factory.GetParser(pt, parser.Options{
			Account:       accounts[pt],
			StrictAmounts: cfg.Amounts.Strict,
		}, reader, logger)
		if err != nil {
			return nil, err
		}
		parsers[pt] = p
	}

	service := closing.NewService(parsers[Bank], parsers[Processor], parsers[Cash], cat, logger)

	logger.Debug("Container initialized",
		logging.F("parsers_count", len(parsers)),
		logging.F("rules_count", rules.Len()),
		logging.F("strict_amounts", cfg.Amounts.Strict))

	return &Container{
		logger:      logger,
		config:      cfg,
		reader:      reader,
		rules:       rules,
		categories:  categories,
		categorizer: cat,
		closing:     service,
		reports:     report.NewReportGenerator(logger),
		parsers:     parsers,
	}, nil
}

// GetParser returns the adapter for pt.
func (c *Container) GetParser(pt ParserType) (parser.StatementParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[ParserType]parser.StatementParser {
	result := make(map[ParserType]parser.StatementParser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetReader() *tabular.Reader {
	return c.reader
}

func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

func (c *Container) GetRuleStore() *store.RuleStore {
	return c.rules
}

func (c *Container) GetCategoryStore() *store.CategoryListStore {
	return c.categories
}

func (c *Container) GetClosingService() *closing.Service {
	return c.closing
}

func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reports
}

// Close releases container resources. The stores write on every change,
// so there is nothing to flush.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
