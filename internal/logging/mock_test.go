package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	errBoom := errors.New("boom")

	mock.Info("start")
	mock.WithError(errBoom).Warn("degraded", F(FieldFile, "rules.yaml"))
	mock.WithField(FieldAccount, "Itau").Debug("row skipped")

	entries := mock.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "WARN", entries[1].Level)
	assert.Equal(t, errBoom, entries[1].Error)
	assert.Equal(t, []Field{F(FieldAccount, "Itau")}, entries[2].Fields)

	assert.True(t, mock.HasEntry("WARN", "degraded"))
	assert.False(t, mock.HasEntry("ERROR", "degraded"))
	assert.Len(t, mock.EntriesByLevel("INFO"), 1)
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Error("still recorded")
	assert.True(t, mock.HasEntry("ERROR", "still recorded"))
}
