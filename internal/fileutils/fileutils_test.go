package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "regras.yaml")
	require.NoError(t, os.WriteFile(testFile, []byte("{}"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "missing.yaml")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestAtomicWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "nested", "regras.yaml")

	require.NoError(t, fileutils.AtomicWriteFile(target, []byte("first"), 0600))
	require.NoError(t, fileutils.AtomicWriteFile(target, []byte("second"), 0600))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files should be left behind")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".xlsx", fileutils.Extension("Extrato.XLSX"))
	assert.Equal(t, ".csv", fileutils.Extension("/tmp/pag.csv"))
	assert.Equal(t, "", fileutils.Extension("semextensao"))
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "Janeiro_2025", fileutils.SafeFileName(" Janeiro 2025 "))
	assert.Equal(t, "1a_quinzena_01_2025", fileutils.SafeFileName("1a quinzena 01/2025"))
	assert.Equal(t, "fechamento", fileutils.SafeFileName(""))
}
