package sheetsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
)

func metricOn(date string, clicks, entries, exits int) *domain.DailyMetric {
	d, _ := time.Parse(time.DateOnly, date)
	return &domain.DailyMetric{
		CampaignID: "c",
		Date:       d,
		Clicks:     clicks,
		Entries:    entries,
		Exits:      exits,
	}
}

func TestMergeRecords(t *testing.T) {
	persisted := []*domain.DailyMetric{
		metricOn("2024-01-15", 50, 10, 4),
	}

	tests := []struct {
		name   string
		parsed domain.ParsedDailyRecord
		want   domain.MergedRecord
	}{
		{
			name:   "mantém clicks, entradas e saídas quando a planilha não traz valores",
			parsed: domain.ParsedDailyRecord{CampaignID: "c", Date: "2024-01-15", AmountSpent: 20, Leads: 3},
			want:   domain.MergedRecord{CampaignID: "c", Date: "2024-01-15", AmountSpent: 20, Leads: 3, Clicks: 50, Entries: 10, Exits: 4},
		},
		{
			name:   "entradas positivas da planilha substituem",
			parsed: domain.ParsedDailyRecord{CampaignID: "c", Date: "2024-01-15", Entries: 7},
			want:   domain.MergedRecord{CampaignID: "c", Date: "2024-01-15", Clicks: 50, Entries: 7, Exits: 4},
		},
		{
			name:   "data nova",
			parsed: domain.ParsedDailyRecord{CampaignID: "c", Date: "2024-01-20", AmountSpent: 5, Leads: 1, Entries: 2, Exits: 1},
			want:   domain.MergedRecord{CampaignID: "c", Date: "2024-01-20", AmountSpent: 5, Leads: 1, Clicks: 0, Entries: 2, Exits: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeRecords([]domain.ParsedDailyRecord{tt.parsed}, persisted)
			assert.Equal(t, []domain.MergedRecord{tt.want}, merged)
		})
	}
}

func TestMergeRecords_Idempotent(t *testing.T) {
	parsed := []domain.ParsedDailyRecord{
		{CampaignID: "c", Date: "2024-01-15", AmountSpent: 10, Leads: 2, Entries: 3},
		{CampaignID: "c", Date: "2024-01-16", AmountSpent: 12, Leads: 1},
	}

	first := MergeRecords(parsed, nil)

	// Simula o estado do banco após a primeira gravação
	persisted := make([]*domain.DailyMetric, 0, len(first))
	for _, r := range first {
		m := metricOn(r.Date, r.Clicks, r.Entries, r.Exits)
		m.Leads = r.Leads
		m.AmountSpent = r.AmountSpent
		persisted = append(persisted, m)
	}

	second := MergeRecords(parsed, persisted)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, TotalLeads(second))
}
