package categorizer

import (
	"context"

	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
)

// SignStrategy is the last tier: inflows are sales, outflows are supplier
// costs and zero movements stay unclassified. It always applies.
type SignStrategy struct{}

func (SignStrategy) Name() string {
	return StrategySign
}

func (SignStrategy) Categorize(_ context.Context, tx models.Transaction) (models.Category, bool, error) {
	return signCategory(tx), true, nil
}

func signCategory(tx models.Transaction) models.Category {
	switch {
	case tx.Amount.IsPositive():
		return models.Category{Name: models.CategorySales, Source: StrategySign}
	case tx.Amount.IsNegative():
		return models.Category{Name: models.CategorySuppliers, Source: StrategySign}
	default:
		return models.Category{Name: models.CategoryUnclassified, Source: StrategySign}
	}
}
