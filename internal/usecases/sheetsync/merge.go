package sheetsync

import "github.com/vfg2006/campaign-sheet-sync/internal/domain"

// MergeRecords combina os registros da planilha com os dados já salvos.
// Clicks sempre vem do banco; entradas e saídas da planilha só substituem quando positivas.
func MergeRecords(parsed []domain.ParsedDailyRecord, persisted []*domain.DailyMetric) []domain.MergedRecord {
	existing := make(map[string]*domain.DailyMetric, len(persisted))
	for _, metric := range persisted {
		if metric == nil {
			continue
		}
		existing[metric.DateKey()] = metric
	}

	merged := make([]domain.MergedRecord, 0, len(parsed))
	for _, record := range parsed {
		var clicks, entries, exits int
		if metric, ok := existing[record.Date]; ok {
			clicks = metric.Clicks
			entries = metric.Entries
			exits = metric.Exits
		}

		merged = append(merged, domain.MergedRecord{
			CampaignID:  record.CampaignID,
			Date:        record.Date,
			AmountSpent: record.AmountSpent,
			Leads:       record.Leads,
			Clicks:      clicks,
			Entries:     preferPositive(record.Entries, entries),
			Exits:       preferPositive(record.Exits, exits),
		})
	}

	return merged
}

func preferPositive(parsed, current int) int {
	if parsed > 0 {
		return parsed
	}
	return current
}

// TotalLeads soma os leads de todos os registros
func TotalLeads(records []domain.MergedRecord) int {
	total := 0
	for _, record := range records {
		total += record.Leads
	}
	return total
}
