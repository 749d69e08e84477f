package categorize

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/CadoCordova/Tempero-Fechamento/cmd/root"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	root.Cmd.AddCommand(Cmd)
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	description, amount = "", ""

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&bytes.Buffer{})
	root.Cmd.SetArgs(append(append([]string{"categorize"}, args...),
		"--rules", filepath.Join(dir, "regras.yaml"),
		"--categories", filepath.Join(dir, "categorias.yaml"),
		"--log-level", "error",
	))
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)

	descriptionFlag := Cmd.Flags().Lookup("description")
	require.NotNil(t, descriptionFlag)
	assert.Equal(t, "d", descriptionFlag.Shorthand)

	amountFlag := Cmd.Flags().Lookup("amount")
	require.NotNil(t, amountFlag)
	assert.Equal(t, "a", amountFlag.Shorthand)
	assert.Equal(t, "", amountFlag.DefValue)
}

func TestCategorizeCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "keyword",
			args: []string{"-d", "PAGTO CEEE 01/2025", "-a", "-300,00"},
			want: models.CategoryEnergy + " (keyword)\n",
		},
		{
			name: "positive amount",
			args: []string{"-d", "CREDITO DIVERSO", "-a", "150"},
			want: models.CategorySales + " (sign)\n",
		},
		{
			name: "negative amount",
			args: []string{"-d", "DEBITO DIVERSO", "-a", "-75,00"},
			want: models.CategorySuppliers + " (sign)\n",
		},
		{
			name: "no amount",
			args: []string{"-d", "SEM PISTA"},
			want: models.CategoryUnclassified + " (sign)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCategorizeCommand_InvalidAmount(t *testing.T) {
	_, err := execute(t, "-d", "QUALQUER", "-a", "dez reais")
	assert.Error(t, err)
}
