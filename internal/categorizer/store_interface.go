package categorizer

import "github.com/CadoCordova/Tempero-Fechamento/internal/models"

// RuleStore is the learned rule table as seen by the categorizer.
// store.RuleStore and store.MockRuleStore implement it.
type RuleStore interface {
	Match(normalized string) (models.Rule, bool)
	Put(pattern, category string) error
	Rules() []models.Rule
}
