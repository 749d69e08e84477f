package store

import (
	"strings"
	"sync"

	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
)

// MockRuleStore is an in-memory rule table for tests. It never touches disk.
type MockRuleStore struct {
	mu    sync.Mutex
	Table []models.Rule

	// Error returned by Put, for testing failure paths
	PutError error
	Puts     int
}

// Match returns the first rule whose pattern occurs in normalized.
func (m *MockRuleStore) Match(normalized string) (models.Rule, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rule := range m.Table {
		if strings.Contains(normalized, rule.Pattern) {
			return rule, true
		}
	}
	return models.Rule{}, false
}

// Put records a rule, overwriting an existing pattern in place.
func (m *MockRuleStore) Put(pattern, category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Puts++
	if m.PutError != nil {
		return m.PutError
	}
	for i := range m.Table {
		if m.Table[i].Pattern == pattern {
			m.Table[i].Category = category
			return nil
		}
	}
	m.Table = append(m.Table, models.Rule{Pattern: pattern, Category: category})
	return nil
}

// Rules returns a copy of the table.
func (m *MockRuleStore) Rules() []models.Rule {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Rule, len(m.Table))
	copy(out, m.Table)
	return out
}
