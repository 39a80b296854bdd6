package sheetsync

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	fieldSeparator = ','
	quoteChar      = '"'
	byteOrderMark  = "\ufeff"
)

// DecodeCSV quebra o texto em linhas e cada linha em células.
// Linhas em branco são descartadas antes da decodificação.
func DecodeCSV(text string) [][]string {
	text = strings.TrimPrefix(text, byteOrderMark)

	rows := make([][]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, decodeLine(line))
	}

	return rows
}

// decodeLine separa por vírgula fora de aspas. As aspas alternam o estado e não vão para a saída;
// aspas sem fechamento terminam no fim da linha.
func decodeLine(line string) []string {
	cells := make([]string, 0)
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == quoteChar:
			inQuotes = !inQuotes
		case char == fieldSeparator && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	cells = append(cells, strings.TrimSpace(current.String()))

	return cells
}

// DecodeXLSX lê a primeira aba de uma pasta de trabalho no mesmo formato de DecodeCSV
func DecodeXLSX(body []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return [][]string{}, nil
	}

	rawRows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(rawRows))
	for _, raw := range rawRows {
		row := make([]string, len(raw))
		blank := true
		for i, cell := range raw {
			row[i] = strings.TrimSpace(cell)
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
