package common

import (
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"
)

// DescriptionSeparator joins the fragments of a synthesized description.
const DescriptionSeparator = " | "

// literalDescriptionColumns carry a description already prepared upstream.
var literalDescriptionColumns = []string{"description", "descricao"}

// descriptionTokens mark history/description columns.
var descriptionTokens = []string{"HIST", "DESCR"}

// ignoredDescriptionColumns are numeric or date columns that never add
// useful text to a description. Names are compared after NormalizeText.
var ignoredDescriptionColumns = map[string]struct{}{
	"DATA":        {},
	"VALOR":       {},
	"VALORES":     {},
	"DEBITO":      {},
	"DEBITO(-)":   {},
	"DEBITO (+)":  {},
	"DEBITO (-)":  {},
	"CREDITO":     {},
	"CREDITO(+)":  {},
	"CREDITO (+)": {},
	"CREDITO (-)": {},
	"ENTRADA":     {},
	"ENTRADAS":    {},
	"SAIDA":       {},
	"SAIDAS":      {},
	"SALDO":       {},
}

// SynthesizeDescription builds a readable description for row.
//
// A non-empty literal description column wins outright. Otherwise the
// history/description columns are collected first, then every other
// non-ignored column whose value was not collected yet. Fragments are
// joined with DescriptionSeparator. An empty string means nothing usable
// was found.
func SynthesizeDescription(row tabular.Row) string {
	for _, column := range literalDescriptionColumns {
		if v, ok := row.Get(column); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}

	var parts []string

	for _, column := range row.Columns() {
		value := strings.TrimSpace(row.Value(column))
		if value == "" {
			continue
		}
		if textutils.ContainsAny(textutils.NormalizeText(strings.TrimSpace(column)), descriptionTokens...) {
			parts = append(parts, value)
		}
	}

	for _, column := range row.Columns() {
		value := strings.TrimSpace(row.Value(column))
		if value == "" {
			continue
		}
		if _, ignored := ignoredDescriptionColumns[textutils.NormalizeText(strings.TrimSpace(column))]; ignored {
			continue
		}
		if contains(parts, value) {
			continue
		}
		parts = append(parts, value)
	}

	return strings.Join(parts, DescriptionSeparator)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
