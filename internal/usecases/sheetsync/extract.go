package sheetsync

import (
	"sort"

	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
	"github.com/vfg2006/campaign-sheet-sync/pkg/utils"
)

// ExtractRecords converte as linhas abaixo do cabeçalho em registros diários.
// Linhas sem data válida (YYYY-MM-DD) são ignoradas; a última linha de uma data repetida prevalece.
func ExtractRecords(campaignID string, rows [][]string, headerRow int, columns ColumnIndex) ([]domain.ParsedDailyRecord, error) {
	dateIdx, ok := columns.Get(FieldDate)
	if !ok {
		return nil, ErrMissingRequiredColumns
	}
	amountIdx, ok := columns.Get(FieldAmountSpent)
	if !ok {
		return nil, ErrMissingRequiredColumns
	}

	byDate := make(map[string]domain.ParsedDailyRecord)

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		date := safeGet(row, dateIdx)
		if date == "" || !utils.IsDateOnly(date) {
			continue
		}

		byDate[date] = domain.ParsedDailyRecord{
			CampaignID:  campaignID,
			Date:        date,
			AmountSpent: utils.NonNegative(ParseLocaleNumber(safeGet(row, amountIdx))),
			Leads:       countAt(row, columns, FieldLeads),
			Entries:     countAt(row, columns, FieldEntries),
			Exits:       countAt(row, columns, FieldExits),
		}
	}

	if len(byDate) == 0 {
		return nil, ErrEmptyResult
	}

	records := make([]domain.ParsedDailyRecord, 0, len(byDate))
	for _, record := range byDate {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	return records, nil
}

func countAt(row []string, columns ColumnIndex, field Field) int {
	idx, ok := columns.Get(field)
	if !ok {
		return 0
	}
	return utils.RoundToCount(ParseLocaleNumber(safeGet(row, idx)))
}

// safeGet protege contra linhas com menos células que o cabeçalho
func safeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
