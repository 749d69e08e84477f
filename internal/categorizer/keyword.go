package categorizer

import (
	"context"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"
)

// KeywordRule assigns Category when every group has at least one keyword
// contained in the normalized description. Keywords are stored normalized.
type KeywordRule struct {
	Category string
	AllOf    [][]string
}

func (r KeywordRule) matches(normalized string) bool {
	if len(r.AllOf) == 0 {
		return false
	}
	for _, anyOf := range r.AllOf {
		if !textutils.ContainsAny(normalized, anyOf...) {
			return false
		}
	}
	return true
}

func anyOf(keywords ...string) [][]string {
	return [][]string{keywords}
}

// DefaultKeywordRules is evaluated top to bottom; the first match wins.
var DefaultKeywordRules = []KeywordRule{
	{Category: models.CategoryPestControl, AllOf: anyOf("ANTINSECT")},
	{Category: models.CategoryEnergy, AllOf: anyOf("CIA ESTADUAL DE DIST", "CEEE", "ENERGIA ELETRICA")},
	{Category: models.CategoryAccounting, AllOf: anyOf("RECH CONTABILIDADE", "RECH CONT")},
	{Category: models.CategoryCardBill, AllOf: anyOf("BUSINESS      0503-2852", "BUSINESS 0503-2852", "ITAU UNIBANCO HOLDING S.A.", "CARTAO")},
	{Category: models.CategoryInvestments, AllOf: anyOf("APLICACAO", "CDB", "CREDBANCRF")},
	{Category: models.CategoryInvestmentYield, AllOf: anyOf("REND PAGO APLIC", "RENDIMENTO APLIC", "REND APLIC", "RENDIMENTO")},
	{Category: models.CategoryRent, AllOf: anyOf("ZOOP", "ALUGUEL")},
	{Category: models.CategoryDelivery, AllOf: anyOf("MOTOBOY", "ENTREGA")},
	{Category: models.CategoryPayroll, AllOf: anyOf("CAROLINE", "VERONICA", "VERONICA DA SILVA CARDOSO", "EVELLYN", "SALARIO", "FOLHA")},
	{Category: models.CategoryNutritionist, AllOf: anyOf("ANA PAULA", "NUTRICIONISTA")},
	{Category: models.CategoryTaxes, AllOf: anyOf("DARF", "GPS", "FGTS", "INSS", "SIMPLES NACIONAL", "IMPOSTO")},
	{
		Category: models.CategoryInternalTransfer,
		AllOf: [][]string{
			{"TRANSFERENCIA", "PIX"},
			{"RICARDO", "LIZIANI", "LIZI"},
		},
	},
}

// KeywordStrategy applies an ordered table of keyword rules.
type KeywordStrategy struct {
	rules  []KeywordRule
	logger logging.Logger
}

// NewKeywordStrategy creates a strategy over rules. A nil table selects
// DefaultKeywordRules.
func NewKeywordStrategy(rules []KeywordRule, logger logging.Logger) *KeywordStrategy {
	if rules == nil {
		rules = DefaultKeywordRules
	}
	return &KeywordStrategy{rules: rules, logger: logger}
}

func (s *KeywordStrategy) Name() string {
	return StrategyKeyword
}

func (s *KeywordStrategy) Categorize(ctx context.Context, tx models.Transaction) (models.Category, bool, error) {
	normalized := textutils.NormalizeText(tx.Description)
	if normalized == "" {
		return models.Category{}, false, nil
	}

	for _, rule := range s.rules {
		if rule.matches(normalized) {
			s.logger.Debug("Transaction categorized by keyword",
				logging.F(logging.FieldCategory, rule.Category))
			return models.Category{Name: rule.Category, Source: StrategyKeyword}, true, nil
		}
	}
	return models.Category{}, false, nil
}
