// Package xlsxclient lê os mesmos intervalos de uma pasta de trabalho local
package xlsxclient

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type XLSXClient struct {
	path string
}

func NewClient(path string) (*XLSXClient, error) {
	if path == "" {
		return nil, errors.New("XLSX_PATH não configurado")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "pasta de trabalho %s inacessível", path)
	}
	return &XLSXClient{path: path}, nil
}

func (c *XLSXClient) Path() string {
	return c.path
}

// FetchRange abre o arquivo a cada chamada para refletir alterações em disco
func (c *XLSXClient) FetchRange(ctx context.Context, sheetName, rangeSpec string) ([][]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bounds, err := parseRange(rangeSpec)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao abrir %s", c.path)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler a aba %s", sheetName)
	}

	return bounds.slice(rows), nil
}

// cellRange usa coordenadas 1-indexadas; zero em lastRow significa até o fim
type cellRange struct {
	firstCol, firstRow int
	lastCol, lastRow   int
}

// parseRange entende "A2:X", "B2:C10" e "A1"
func parseRange(rangeSpec string) (cellRange, error) {
	start, end, hasEnd := strings.Cut(strings.ToUpper(strings.TrimSpace(rangeSpec)), ":")

	firstCol, firstRow, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return cellRange{}, fmt.Errorf("intervalo inválido %q: %w", rangeSpec, err)
	}

	if !hasEnd {
		return cellRange{firstCol: firstCol, firstRow: firstRow, lastCol: firstCol, lastRow: firstRow}, nil
	}

	var r cellRange
	if lastCol, lastRow, err := excelize.CellNameToCoordinates(end); err == nil {
		r = cellRange{firstCol: firstCol, firstRow: firstRow, lastCol: lastCol, lastRow: lastRow}
	} else {
		lastCol, colErr := excelize.ColumnNameToNumber(end)
		if colErr != nil {
			return cellRange{}, fmt.Errorf("intervalo inválido %q: %w", rangeSpec, colErr)
		}
		r = cellRange{firstCol: firstCol, firstRow: firstRow, lastCol: lastCol}
	}

	if r.lastCol < r.firstCol || (r.lastRow != 0 && r.lastRow < r.firstRow) {
		return cellRange{}, fmt.Errorf("intervalo invertido %q", rangeSpec)
	}
	return r, nil
}

// slice recorta a grade como a API do Google faz: sem células vazias no fim
// de cada linha e sem linhas vazias no fim
func (r cellRange) slice(rows [][]string) [][]any {
	result := make([][]any, 0, len(rows))

	for i := r.firstRow - 1; i < len(rows); i++ {
		if r.lastRow != 0 && i > r.lastRow-1 {
			break
		}

		row := rows[i]
		values := make([]any, 0, r.lastCol-r.firstCol+1)
		for j := r.firstCol - 1; j < r.lastCol && j < len(row); j++ {
			values = append(values, row[j])
		}
		for len(values) > 0 && values[len(values)-1] == "" {
			values = values[:len(values)-1]
		}
		result = append(result, values)
	}

	for len(result) > 0 && len(result[len(result)-1]) == 0 {
		result = result[:len(result)-1]
	}
	return result
}
