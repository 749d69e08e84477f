package categorizer

import (
	"context"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"
)

// LearnedRuleStrategy matches the normalized description against the rules
// taught by the user, in the order they were learned.
type LearnedRuleStrategy struct {
	rules  RuleStore
	logger logging.Logger
}

// NewLearnedRuleStrategy creates a strategy reading from rules.
func NewLearnedRuleStrategy(rules RuleStore, logger logging.Logger) *LearnedRuleStrategy {
	return &LearnedRuleStrategy{rules: rules, logger: logger}
}

func (s *LearnedRuleStrategy) Name() string {
	return StrategyLearned
}

func (s *LearnedRuleStrategy) Categorize(ctx context.Context, tx models.Transaction) (models.Category, bool, error) {
	if s.rules == nil {
		return models.Category{}, false, nil
	}

	rule, ok := s.rules.Match(textutils.NormalizeText(tx.Description))
	if !ok {
		return models.Category{}, false, nil
	}

	s.logger.Debug("Transaction categorized by learned rule",
		logging.F(logging.FieldPattern, rule.Pattern),
		logging.F(logging.FieldCategory, rule.Category))
	return models.Category{Name: rule.Category, Source: StrategyLearned}, true, nil
}
