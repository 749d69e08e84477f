// Package categorizer assigns a category to every transaction. Learned
// rules are tried first, then the built-in keyword table, then the sign of
// the amount. The chain always produces a category.
package categorizer

import (
	"context"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"
)

// Categorizer runs the strategy chain and owns the learning loop.
type Categorizer struct {
	rules      RuleStore
	strategies []CategorizationStrategy
	logger     logging.Logger
}

// NewCategorizer builds the default chain over rules.
func NewCategorizer(rules RuleStore, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return NewCategorizerWithStrategies(rules, logger,
		NewLearnedRuleStrategy(rules, logger),
		NewKeywordStrategy(nil, logger),
		SignStrategy{},
	)
}

// NewCategorizerWithStrategies builds a categorizer with a custom chain.
// Strategies run in the given order.
func NewCategorizerWithStrategies(rules RuleStore, logger logging.Logger, strategies ...CategorizationStrategy) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{
		rules:      rules,
		strategies: strategies,
		logger:     logger,
	}
}

// Strategies returns the strategy names in evaluation order.
func (c *Categorizer) Strategies() []string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Categorize returns the category of tx. A failing strategy is logged and
// skipped; when nothing applies the sign of the amount decides.
func (c *Categorizer) Categorize(ctx context.Context, tx models.Transaction) models.Category {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, tx)
		if err != nil {
			c.logger.WithError(&parsererror.CategorizationError{
				Description: tx.Description,
				Strategy:    strategy.Name(),
				Err:         err,
			}).Warn("Categorization strategy failed")
			continue
		}
		if found && category.Name != "" {
			return category
		}
	}
	return signCategory(tx)
}

// CategorizeAll returns copies of txs with their category set. The input
// slice is left untouched.
func (c *Categorizer) CategorizeAll(ctx context.Context, txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = tx.WithCategory(c.Categorize(ctx, tx).Name)
	}
	c.logger.Debug("Transactions categorized", logging.F(logging.FieldCount, len(out)))
	return out
}

// Learn stores NormalizeText(description) -> category and persists the
// rule table. Re-learning a description overwrites its category.
func (c *Categorizer) Learn(description, category string) (models.Rule, error) {
	pattern := strings.TrimSpace(textutils.NormalizeText(description))
	category = strings.TrimSpace(category)
	if pattern == "" || category == "" {
		return models.Rule{}, &parsererror.ValidationError{
			Reason: "description and category are required to learn a rule",
		}
	}
	if c.rules == nil {
		return models.Rule{}, &parsererror.ValidationError{Reason: "no rule table configured"}
	}

	if err := c.rules.Put(pattern, category); err != nil {
		return models.Rule{}, err
	}

	c.logger.Info("Learned categorization rule",
		logging.F(logging.FieldPattern, pattern),
		logging.F(logging.FieldCategory, category))
	return models.Rule{Pattern: pattern, Category: category}, nil
}

// Rules returns the learned rules in match order.
func (c *Categorizer) Rules() []models.Rule {
	if c.rules == nil {
		return nil
	}
	return c.rules.Rules()
}
