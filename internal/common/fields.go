// Package common provides helpers shared by the statement adapters: column
// alias lookup, description synthesis and CSV output.
package common

import (
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"
)

// FirstPresent returns the value of the first alias that the row has with a
// non-blank cell, along with the alias that matched. A cell holding "0" is
// present; only absent columns and blank cells move on to the next alias.
func FirstPresent(row tabular.Row, aliases ...string) (value string, column string, ok bool) {
	for _, alias := range aliases {
		v, present := row.Get(alias)
		if !present || strings.TrimSpace(v) == "" {
			continue
		}
		return v, alias, true
	}
	return "", "", false
}

// HasAnyColumn reports whether one of the aliases is part of the header.
func HasAnyColumn(columns []string, aliases ...string) bool {
	for _, column := range columns {
		for _, alias := range aliases {
			if column == alias {
				return true
			}
		}
	}
	return false
}

// ColumnsContaining returns, in header order, the columns whose normalized
// name contains token.
func ColumnsContaining(columns []string, token string) []string {
	var matched []string
	for _, column := range columns {
		if strings.Contains(textutils.NormalizeText(column), token) {
			matched = append(matched, column)
		}
	}
	return matched
}
