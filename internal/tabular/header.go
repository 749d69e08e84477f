package tabular

import (
	"fmt"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"
)

// byteOrderMark is left on the first header cell by some CSV exports.
const byteOrderMark = "\ufeff"

// headerDateToken must appear in the header row as its own cell.
const headerDateToken = "DATA"

// headerCompanionTokens are the cells that, next to DATA, mark a header row.
// A companion matches exactly or followed by a parenthesized unit, as in
// "VALOR (R$)", so letterhead such as "Tipo de conta" is not taken for one.
var headerCompanionTokens = []string{
	"LANCAMENTO",
	"DESCRICAO",
	"TIPO",
	"HISTORICO",
	"VALOR",
}

// DetectHeader returns the index of the first line that looks like the
// statement header: a DATA cell plus one of headerCompanionTokens. Banks put
// their letterhead above the table, so the header is rarely on line 0. When
// nothing matches, 0 is returned.
func DetectHeader(lines [][]string) int {
	for i, cells := range lines {
		if isHeaderLine(cells) {
			return i
		}
	}
	return 0
}

func isHeaderLine(cells []string) bool {
	dateAt := -1
	for i, cell := range cells {
		c := strings.TrimSpace(textutils.NormalizeText(cell))
		if c == headerDateToken || strings.HasPrefix(c, headerDateToken+" ") {
			dateAt = i
			break
		}
	}
	if dateAt < 0 {
		return false
	}

	for i, cell := range cells {
		if i == dateAt {
			continue
		}
		c := strings.TrimSpace(textutils.NormalizeText(cell))
		for _, token := range headerCompanionTokens {
			if c == token || strings.HasPrefix(c, token+" (") {
				return true
			}
		}
	}
	return false
}

// normalizeHeader trims column names, names blank ones after their
// position and suffixes duplicates so that every column stays addressable.
func normalizeHeader(cells []string) []string {
	header := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for i, cell := range cells {
		name := strings.TrimSpace(strings.TrimPrefix(cell, byteOrderMark))
		if name == "" {
			name = fmt.Sprintf("Coluna %d", i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		header[i] = name
	}
	return header
}

// buildTable converts raw lines into a table using headerIdx as header and
// dropping blank lines.
func buildTable(lines [][]string, headerIdx int) *Table {
	if len(lines) == 0 {
		return &Table{Columns: []string{}, Rows: []Row{}}
	}
	header := normalizeHeader(lines[headerIdx])
	table := &Table{Columns: header, Rows: []Row{}, HeaderRow: headerIdx}
	for _, cells := range lines[headerIdx+1:] {
		row := NewRow(header, cells)
		if row.IsEmpty() {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
