package sheetsync

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field identifica um campo lógico da planilha
type Field string

const (
	FieldDate        Field = "date"
	FieldAmountSpent Field = "amount_spent"
	FieldLeads       Field = "leads"
	FieldEntries     Field = "entries"
	FieldExits       Field = "exits"
)

// NotFound marca um campo sem coluna correspondente
const NotFound = -1

type columnRule struct {
	field    Field
	keywords []string
}

// A ordem importa: cada campo fica com a primeira coluna que contém alguma das palavras-chave
var columnRules = []columnRule{
	{field: FieldDate, keywords: []string{"day"}},
	{field: FieldAmountSpent, keywords: []string{"amount", "spent"}},
	{field: FieldLeads, keywords: []string{"leads"}},
	{field: FieldEntries, keywords: []string{"entradas", "entries", "entrada"}},
	{field: FieldExits, keywords: []string{"saidas", "exits", "saida"}},
}

var headerMarkers = []string{"day", "amount"}

// ColumnIndex associa cada campo à posição da coluna, ou NotFound
type ColumnIndex map[Field]int

// Get devolve a posição da coluna e se ela foi encontrada
func (c ColumnIndex) Get(field Field) (int, bool) {
	idx, ok := c[field]
	if !ok || idx == NotFound {
		return NotFound, false
	}
	return idx, true
}

// MapColumns localiza a linha de cabeçalho e resolve a posição de cada campo.
// Retorna a posição da linha de cabeçalho dentro de rows.
func MapColumns(rows [][]string) (int, ColumnIndex, error) {
	headerRow := findHeaderRow(rows)
	if headerRow == NotFound {
		return NotFound, nil, ErrMissingHeader
	}

	header := make([]string, len(rows[headerRow]))
	for i, cell := range rows[headerRow] {
		header[i] = foldHeader(cell)
	}

	columns := make(ColumnIndex, len(columnRules))
	for _, rule := range columnRules {
		columns[rule.field] = findColumn(header, rule.keywords)
	}

	if _, ok := columns.Get(FieldDate); !ok {
		return headerRow, columns, ErrMissingRequiredColumns
	}
	if _, ok := columns.Get(FieldAmountSpent); !ok {
		return headerRow, columns, ErrMissingRequiredColumns
	}

	return headerRow, columns, nil
}

func findHeaderRow(rows [][]string) int {
	for i, row := range rows {
		for _, cell := range row {
			if containsAny(foldHeader(cell), headerMarkers) {
				return i
			}
		}
	}
	return NotFound
}

func findColumn(header []string, keywords []string) int {
	for i, cell := range header {
		if containsAny(cell, keywords) {
			return i
		}
	}
	return NotFound
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}

// foldHeader remove acentos e caixa: "Saídas" vira "saidas"
func foldHeader(value string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)

	folded, _, err := transform.String(t, value)
	if err != nil {
		folded = value
	}

	return strings.ToLower(strings.TrimSpace(folded))
}
