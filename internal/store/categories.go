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

// CategoryListStore holds the user defined categories, in the order they
// were added.
type CategoryListStore struct {
	path   string
	logger logging.Logger

	mu    sync.RWMutex
	names []string
}

// NewCategoryListStore creates an empty store bound to path.
func NewCategoryListStore(path string, logger logging.Logger) *CategoryListStore {
	if path == "" {
		path = DefaultCategoriesFile
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CategoryListStore{
		path:   path,
		logger: logger.WithField(logging.FieldFile, path),
	}
}

// Path returns the backing file.
func (s *CategoryListStore) Path() string {
	return s.path
}

// Load reads the list. Missing, unreadable and malformed files all yield an
// empty list.
func (s *CategoryListStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.WithError(err).Warn("Unreadable categories file ignored",
				logging.F(logging.FieldFile, s.path))
		}
		s.set(nil)
		return nil
	}

	names, err := decodeList(data)
	if err != nil {
		s.logger.WithError(err).Warn("Malformed categories file ignored")
		s.set(nil)
		return nil
	}

	s.set(names)
	return nil
}

func (s *CategoryListStore) set(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names = s.names[:0]
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" && !containsName(s.names, name) {
			s.names = append(s.names, name)
		}
	}
}

// List returns a copy of the custom categories.
func (s *CategoryListStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Add appends name and persists the list. It reports false when the
// category was already present.
func (s *CategoryListStore) Add(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, &parsererror.ValidationError{FilePath: s.path, Reason: "category name must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if containsName(s.names, name) {
		return false, nil
	}
	s.names = append(s.names, name)

	data, err := encodeList(s.names, isJSON(s.path))
	if err != nil {
		s.names = s.names[:len(s.names)-1]
		return false, fmt.Errorf("error encoding categories: %w", err)
	}
	if err := fileutils.AtomicWriteFile(s.path, data, models.PermissionConfigFile); err != nil {
		s.names = s.names[:len(s.names)-1]
		return false, fmt.Errorf("error writing categories file: %w", err)
	}

	s.logger.Info("Custom category added", logging.F(logging.FieldCategory, name))
	return true, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
