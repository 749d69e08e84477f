package categorizer

import (
	"context"

	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
)

// Strategy names, also used as models.Category.Source.
const (
	StrategyLearned = "learned"
	StrategyKeyword = "keyword"
	StrategySign    = "sign"
)

// CategorizationStrategy is one tier of the categorization chain.
type CategorizationStrategy interface {
	// Categorize returns the category and true when the strategy applies
	// to tx. The category is only meaningful when found is true.
	Categorize(ctx context.Context, tx models.Transaction) (models.Category, bool, error)

	// Name identifies the strategy in logs.
	Name() string
}
