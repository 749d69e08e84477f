// Package store persists the learned categorization rules and the custom
// category list. Both stores keep the whole table in memory and rewrite
// their file in full on every change.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"
)

// Default file names, relative to the working directory.
const (
	DefaultRulesFile      = "regras_categorias.yaml"
	DefaultCategoriesFile = "categorias_personalizadas.yaml"
)

// RuleStore holds the ordered pattern -> category table.
type RuleStore struct {
	path   string
	logger logging.Logger

	mu    sync.RWMutex
	rules []models.Rule
	index map[string]int
}

// NewRuleStore creates an empty store bound to path. Call Load to read it.
func NewRuleStore(path string, logger logging.Logger) *RuleStore {
	if path == "" {
		path = DefaultRulesFile
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{
		path:   path,
		logger: logger.WithField(logging.FieldFile, path),
		index:  make(map[string]int),
	}
}

// Path returns the backing file.
func (s *RuleStore) Path() string {
	return s.path
}

// Load replaces the in-memory table with the file content. A missing file
// is an empty table. An unreadable or malformed one is logged and also
// treated as empty.
func (s *RuleStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Rules file not found, starting with an empty table")
		} else {
			s.logger.WithError(err).Warn("Unreadable rules file ignored",
				logging.F(logging.FieldFile, s.path))
		}
		s.replace(nil)
		return nil
	}

	rules, err := decodeRules(data)
	if err != nil {
		s.logger.WithError(err).Warn("Malformed rules file ignored")
		s.replace(nil)
		return nil
	}

	s.replace(rules)
	s.logger.Debug("Loaded categorization rules", logging.F(logging.FieldCount, s.Len()))
	return nil
}

func (s *RuleStore) replace(rules []models.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = s.rules[:0]
	s.index = make(map[string]int, len(rules))
	for _, rule := range rules {
		if strings.TrimSpace(rule.Pattern) == "" || strings.TrimSpace(rule.Category) == "" {
			continue
		}
		s.putLocked(rule.Pattern, rule.Category)
	}
}

func (s *RuleStore) putLocked(pattern, category string) {
	if i, ok := s.index[pattern]; ok {
		s.rules[i].Category = category
		return
	}
	s.index[pattern] = len(s.rules)
	s.rules = append(s.rules, models.Rule{Pattern: pattern, Category: category})
}

// Len returns the number of rules.
func (s *RuleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// Rules returns a copy of the table in match order.
func (s *RuleStore) Rules() []models.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Match returns the first rule whose pattern occurs in normalized.
func (s *RuleStore) Match(normalized string) (models.Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rule := range s.rules {
		if strings.Contains(normalized, rule.Pattern) {
			return rule, true
		}
	}
	return models.Rule{}, false
}

// Put inserts or updates a rule and persists the table. An existing
// pattern keeps its position. When the write fails the table is left as it
// was before the call.
func (s *RuleStore) Put(pattern, category string) error {
	pattern = strings.TrimSpace(pattern)
	category = strings.TrimSpace(category)
	if pattern == "" || category == "" {
		return &parsererror.ValidationError{
			FilePath: s.path,
			Reason:   "rule pattern and category must not be empty",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, existed := s.index[pattern]
	var previous string
	if existed {
		previous = s.rules[i].Category
	}

	s.putLocked(pattern, category)
	if err := s.saveLocked(); err != nil {
		if existed {
			s.rules[i].Category = previous
		} else {
			delete(s.index, pattern)
			s.rules = s.rules[:len(s.rules)-1]
		}
		return err
	}
	return nil
}

// Save writes the table to disk.
func (s *RuleStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

func (s *RuleStore) saveLocked() error {
	data, err := encodeRules(s.rules, isJSON(s.path))
	if err != nil {
		return fmt.Errorf("error encoding rules: %w", err)
	}
	if err := fileutils.AtomicWriteFile(s.path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}
	s.logger.Debug("Saved categorization rules", logging.F(logging.FieldCount, len(s.rules)))
	return nil
}
