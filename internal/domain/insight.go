package domain

import (
	"time"

	"github.com/vfg2006/campaign-sheet-sync/pkg/utils"
)

type MetricsFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DailyMetricInsight é a métrica diária acrescida dos indicadores calculados
type DailyMetricInsight struct {
	*DailyMetric
	RealCPL   float64 `json:"real_cpl"`
	EntryRate float64 `json:"entry_rate"`
	ExitRate  float64 `json:"exit_rate"`
}

// MetricsSummary consolida os totais e médias do período filtrado
type MetricsSummary struct {
	TotalLeads       int     `json:"total_leads"`
	TotalEntries     int     `json:"total_entries"`
	TotalExits       int     `json:"total_exits"`
	TotalAmountSpent float64 `json:"total_amount_spent"`
	AvgCPL           float64 `json:"avg_cpl"`
	AvgRealCPL       float64 `json:"avg_real_cpl"`
	AvgEntryRate     float64 `json:"avg_entry_rate"`
	AvgExitRate      float64 `json:"avg_exit_rate"`
}

type CampaignMetricsResponse struct {
	Campaign *Campaign            `json:"campaign"`
	Metrics  []DailyMetricInsight `json:"metrics"`
	Summary  *MetricsSummary      `json:"summary"`
}

// CalculateDailyInsight calcula CPL real, taxa de entrada e taxa de saída de um dia
func CalculateDailyInsight(metric *DailyMetric) DailyMetricInsight {
	insight := DailyMetricInsight{DailyMetric: metric}

	if metric.Entries > 0 {
		insight.RealCPL = utils.RoundWithTwoDecimalPlace(metric.AmountSpent / float64(metric.Entries))
		insight.ExitRate = utils.RoundWithTwoDecimalPlace(float64(metric.Exits) / float64(metric.Entries) * 100)
	}

	if metric.Clicks > 0 {
		insight.EntryRate = utils.RoundWithTwoDecimalPlace(float64(metric.Entries) / float64(metric.Clicks) * 100)
	}

	return insight
}

// SummarizeMetrics soma os valores do período e calcula as médias.
// A taxa de entrada média é relativa aos leads, não aos cliques.
func SummarizeMetrics(metrics []*DailyMetric) *MetricsSummary {
	summary := &MetricsSummary{}

	for _, m := range metrics {
		summary.TotalLeads += m.Leads
		summary.TotalEntries += m.Entries
		summary.TotalExits += m.Exits
		summary.TotalAmountSpent += m.AmountSpent
	}

	if summary.TotalLeads > 0 {
		summary.AvgCPL = utils.RoundWithTwoDecimalPlace(summary.TotalAmountSpent / float64(summary.TotalLeads))
		summary.AvgEntryRate = utils.RoundWithTwoDecimalPlace(float64(summary.TotalEntries) / float64(summary.TotalLeads) * 100)
	}

	if summary.TotalEntries > 0 {
		summary.AvgRealCPL = utils.RoundWithTwoDecimalPlace(summary.TotalAmountSpent / float64(summary.TotalEntries))
		summary.AvgExitRate = utils.RoundWithTwoDecimalPlace(float64(summary.TotalExits) / float64(summary.TotalEntries) * 100)
	}

	summary.TotalAmountSpent = utils.RoundWithTwoDecimalPlace(summary.TotalAmountSpent)

	return summary
}
