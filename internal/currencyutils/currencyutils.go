// Package currencyutils parses and formats Brazilian-locale amounts.
package currencyutils

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"

	"github.com/shopspring/decimal"
)

// CurrencyMarker is stripped from amount strings before parsing.
const CurrencyMarker = "R$"

var errNotNumeric = errors.New("not a numeric value")

// ParseLocaleAmount converts a cell value into a decimal using the lenient
// policy: anything that cannot be read as a number becomes zero.
//
// Strings may use "1.234,56" (dot thousands, comma decimal), "1234,56" or
// the machine form "1234.56". Empty strings, "-" and nil are zero.
func ParseLocaleAmount(value interface{}) decimal.Decimal {
	amount, err := ParseLocaleAmountStrict(value)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// ParseLocaleAmountStrict applies the same rules as ParseLocaleAmount but
// returns a *parsererror.ParseError for values that are not numbers.
// Missing values (nil, "", "-") and NaN are still zero.
func ParseLocaleAmountStrict(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, nil
		}
		return *v, nil
	case float64:
		return fromFloat(v), nil
	case float32:
		return fromFloat(float64(v)), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		return parseLocaleString(v)
	case fmt.Stringer:
		return parseLocaleString(v.String())
	default:
		return decimal.Zero, &parsererror.ParseError{
			Field: "amount",
			Value: fmt.Sprintf("%v", value),
			Err:   fmt.Errorf("unsupported type %T", value),
		}
	}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseLocaleString(raw string) (decimal.Decimal, error) {
	s := StandardizeAmount(raw)
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Field: "amount",
			Value: raw,
			Err:   errNotNumeric,
		}
	}
	return amount, nil
}

// StandardizeAmount rewrites a Brazilian-locale amount into the form
// accepted by decimal.NewFromString. It does not validate the result.
//
// When both '.' and ',' are present the dots are thousands separators and
// the comma is the decimal point. A lone ',' is the decimal point. A lone
// '.' is left untouched.
func StandardizeAmount(raw string) string {
	s := strings.ReplaceAll(raw, CurrencyMarker, "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}

// FormatBRL renders an amount as "R$ 1.234,56". Negative amounts keep the
// sign after the marker: "R$ -200,00".
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s,%s", CurrencyMarker, sign, grouped.String(), fracPart)
}
