package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumeric converte uma célula da planilha em número.
//
// Política única para todas as colunas: a vírgula é separador de milhar e é
// removida; o ponto é separador decimal. Células vazias, nulas ou que não
// formam um número resultam em 0, nunca em erro.
func ParseNumeric(cell any) float64 {
	switch v := cell.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseNumericString(v)
	case fmt.Stringer:
		return parseNumericString(v.String())
	}
	return 0
}

func parseNumericString(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	f, _ := d.Float64()
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Percentage calcula (part/whole)*100, retornando 0 para base zero ou resultado não finito
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return finiteOrZero(part / whole * 100)
}
