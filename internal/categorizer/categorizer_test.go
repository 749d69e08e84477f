package categorizer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"
	"github.com/CadoCordova/Tempero-Fechamento/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStrategy struct{}

func (failingStrategy) Name() string { return "failing" }

func (failingStrategy) Categorize(context.Context, models.Transaction) (models.Category, bool, error) {
	return models.Category{}, false, errors.New("boom")
}

func tx(description string, amount int64) models.Transaction {
	return models.NewTransaction("01/02/2025", description, decimal.NewFromInt(amount), models.AccountBank)
}

func TestCategorizer_LearnedRuleBeatsKeywords(t *testing.T) {
	rules := &store.MockRuleStore{Table: []models.Rule{{Pattern: "LOJA XYZ", Category: "Custom Category"}}}
	c := NewCategorizer(rules, logging.NewMockLogger())

	category := c.Categorize(context.Background(), tx("Compra Loja XYZ cartão", -50))
	assert.Equal(t, "Custom Category", category.Name)
	assert.Equal(t, StrategyLearned, category.Source)
}

func TestCategorizer_SignFallback(t *testing.T) {
	c := NewCategorizer(&store.MockRuleStore{}, logging.NewMockLogger())

	tests := []struct {
		amount   int64
		expected string
	}{
		{150, models.CategorySales},
		{-75, models.CategorySuppliers},
		{0, models.CategoryUnclassified},
	}
	for _, tt := range tests {
		t.Run(decimal.NewFromInt(tt.amount).String(), func(t *testing.T) {
			category := c.Categorize(context.Background(), tx("MOVIMENTO QUALQUER", tt.amount))
			assert.Equal(t, tt.expected, category.Name)
			assert.Equal(t, StrategySign, category.Source)
		})
	}
}

func TestCategorizer_FailingStrategyIsSkipped(t *testing.T) {
	logger := logging.NewMockLogger()
	c := NewCategorizerWithStrategies(nil, logger, failingStrategy{}, NewKeywordStrategy(nil, logger))

	category := c.Categorize(context.Background(), tx("CONTA CEEE", -90))
	assert.Equal(t, models.CategoryEnergy, category.Name)
	assert.True(t, logger.HasEntry("WARN", "Categorization strategy failed"))

	category = c.Categorize(context.Background(), tx("NADA", -90))
	assert.Equal(t, models.CategorySuppliers, category.Name)
}

func TestCategorizer_CategorizeAllIsIdempotent(t *testing.T) {
	rules := &store.MockRuleStore{Table: []models.Rule{{Pattern: "IFOOD", Category: models.CategorySales}}}
	c := NewCategorizer(rules, logging.NewMockLogger())

	input := []models.Transaction{
		tx("SALARIO CAROLINE", -1000),
		tx("Repasse iFood", 300),
		tx("PIX RECEBIDO", 20),
		tx("TARIFA", 0),
	}

	first := c.CategorizeAll(context.Background(), input)
	second := c.CategorizeAll(context.Background(), first)

	assert.Equal(t, first, second)
	assert.Empty(t, input[0].Category)
	assert.Equal(t, []string{
		models.CategoryPayroll,
		models.CategorySales,
		models.CategorySales,
		models.CategoryUnclassified,
	}, []string{first[0].Category, first[1].Category, first[2].Category, first[3].Category})
}

func TestCategorizer_LearnPersistsNormalizedRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regras_categorias.yaml")
	rules := store.NewRuleStore(path, logging.NewMockLogger())
	require.NoError(t, rules.Load())

	c := NewCategorizer(rules, logging.NewMockLogger())
	assert.Equal(t, models.CategoryCardBill, c.Categorize(context.Background(), tx("Pão de Açúcar cartão", -40)).Name)

	rule, err := c.Learn("Pão de Açúcar cartão", models.CategorySuppliers)
	require.NoError(t, err)
	assert.Equal(t, "PAO DE ACUCAR CARTAO", rule.Pattern)

	reloaded := store.NewRuleStore(path, logging.NewMockLogger())
	require.NoError(t, reloaded.Load())
	fresh := NewCategorizer(reloaded, logging.NewMockLogger())

	category := fresh.Categorize(context.Background(), tx("PAO DE ACUCAR CARTAO 12/02", -40))
	assert.Equal(t, models.CategorySuppliers, category.Name)
	assert.Equal(t, StrategyLearned, category.Source)

	_, err = fresh.Learn("pão de açúcar cartão", models.CategoryCardBill)
	require.NoError(t, err)
	assert.Equal(t, []models.Rule{{Pattern: "PAO DE ACUCAR CARTAO", Category: models.CategoryCardBill}}, fresh.Rules())
}

func TestCategorizer_LearnValidation(t *testing.T) {
	rules := &store.MockRuleStore{}
	c := NewCategorizer(rules, logging.NewMockLogger())

	_, err := c.Learn("  ", models.CategoryRent)
	var validationErr *parsererror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Zero(t, rules.Puts)

	rules.PutError = errors.New("disk full")
	_, err = c.Learn("ALGO", models.CategoryRent)
	assert.EqualError(t, err, "disk full")
}

func TestCategorizer_Strategies(t *testing.T) {
	c := NewCategorizer(&store.MockRuleStore{}, logging.NewMockLogger())
	assert.Equal(t, []string{StrategyLearned, StrategyKeyword, StrategySign}, c.Strategies())
}
