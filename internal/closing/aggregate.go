package closing

import (
	"sort"

	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate buckets categorized transactions per category. Positive amounts
// are entries, negative ones exits and zero movements are ignored. The
// result is sorted by category name and only holds categories with money
// in at least one bucket.
func Aggregate(transactions []models.Transaction) []models.CategorySummary {
	buckets := make(map[string]*models.CategorySummary)
	for _, tx := range transactions {
		if tx.Amount.IsZero() {
			continue
		}
		category := tx.Category
		if category == "" {
			category = models.CategoryUnclassified
		}

		bucket, ok := buckets[category]
		if !ok {
			bucket = &models.CategorySummary{Category: category, Entries: decimal.Zero, Exits: decimal.Zero}
			buckets[category] = bucket
		}
		if tx.Amount.IsPositive() {
			bucket.Entries = bucket.Entries.Add(tx.Amount)
		} else {
			bucket.Exits = bucket.Exits.Add(tx.Amount)
		}
	}

	summaries := make([]models.CategorySummary, 0, len(buckets))
	for _, bucket := range buckets {
		summaries = append(summaries, *bucket)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

// Consolidate sums the provider totals and derives the closing balance from
// opening. Nil statements are skipped so an absent cash ledger needs no
// special casing. One AccountSummary is returned per statement, in order.
func Consolidate(statements []*models.Statement, opening decimal.Decimal) (models.PeriodSummary, []models.AccountSummary) {
	entries, exits := decimal.Zero, decimal.Zero
	accounts := make([]models.AccountSummary, 0, len(statements))

	for _, statement := range statements {
		if statement == nil {
			continue
		}
		entries = entries.Add(statement.Entries)
		exits = exits.Add(statement.Exits)
		accounts = append(accounts, models.AccountSummary{
			Account: statement.Account,
			Entries: statement.Entries,
			Exits:   statement.Exits,
			Result:  statement.Entries.Add(statement.Exits),
		})
	}
	return models.NewPeriodSummary(entries, exits, opening), accounts
}
