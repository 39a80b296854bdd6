package sheetsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
)

func TestExtractRecords(t *testing.T) {
	rows := DecodeCSV("Day,Amount Spent,Leads\n2024-01-15,\"1.234,56\",10\n2024-01-16,100,\ngarbage,line,here\n")

	headerRow, columns, err := MapColumns(rows)
	require.NoError(t, err)

	records, err := ExtractRecords("camp-1", rows, headerRow, columns)
	require.NoError(t, err)

	assert.Equal(t, []domain.ParsedDailyRecord{
		{CampaignID: "camp-1", Date: "2024-01-15", AmountSpent: 1234.56, Leads: 10},
		{CampaignID: "camp-1", Date: "2024-01-16", AmountSpent: 100, Leads: 0},
	}, records)
}

func TestExtractRecords_Rules(t *testing.T) {
	columns := ColumnIndex{
		FieldDate:        0,
		FieldAmountSpent: 1,
		FieldLeads:       2,
		FieldEntries:     3,
		FieldExits:       NotFound,
	}

	tests := []struct {
		name string
		rows [][]string
		want []domain.ParsedDailyRecord
	}{
		{
			name: "contagens arredondadas",
			rows: [][]string{{"2024-02-01", "10,5", "2,6", "3.4"}},
			want: []domain.ParsedDailyRecord{{CampaignID: "c", Date: "2024-02-01", AmountSpent: 10.5, Leads: 3, Entries: 3}},
		},
		{
			name: "linha curta",
			rows: [][]string{{"2024-02-01"}},
			want: []domain.ParsedDailyRecord{{CampaignID: "c", Date: "2024-02-01"}},
		},
		{
			name: "valores negativos viram zero",
			rows: [][]string{{"2024-02-01", "-10", "-2", "-1"}},
			want: []domain.ParsedDailyRecord{{CampaignID: "c", Date: "2024-02-01"}},
		},
		{
			name: "datas fora do formato ignoradas",
			rows: [][]string{
				{"15/01/2024", "1", "1"},
				{"2024-1-5", "1", "1"},
				{"2024-02-30", "1", "1"},
				{"", "1", "1"},
				{"2024-02-02", "5", "1"},
			},
			want: []domain.ParsedDailyRecord{{CampaignID: "c", Date: "2024-02-02", AmountSpent: 5, Leads: 1}},
		},
		{
			name: "data repetida mantém a última linha",
			rows: [][]string{
				{"2024-02-03", "1", "1"},
				{"2024-02-01", "2", "2"},
				{"2024-02-03", "9", "9"},
			},
			want: []domain.ParsedDailyRecord{
				{CampaignID: "c", Date: "2024-02-01", AmountSpent: 2, Leads: 2},
				{CampaignID: "c", Date: "2024-02-03", AmountSpent: 9, Leads: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := append([][]string{{"Day", "Amount", "Leads", "Entradas"}}, tt.rows...)

			records, err := ExtractRecords("c", rows, 0, columns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, records)
		})
	}
}

func TestExtractRecords_NoValidRows(t *testing.T) {
	rows := [][]string{
		{"Day", "Amount Spent"},
		{"Total", "100"},
	}

	headerRow, columns, err := MapColumns(rows)
	require.NoError(t, err)

	_, err = ExtractRecords("c", rows, headerRow, columns)
	assert.ErrorIs(t, err, ErrEmptyResult)
}
