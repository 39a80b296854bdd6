package domain

import (
	"time"
)

// DailyMetric representa as métricas de um dia de campanha armazenadas no banco
type DailyMetric struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Date        time.Time `json:"date"`
	Clicks      int       `json:"clicks"`
	Entries     int       `json:"entries"`
	Exits       int       `json:"exits"`
	Leads       int       `json:"leads"`
	AmountSpent float64   `json:"amount_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateKey retorna a data no formato YYYY-MM-DD, usado como chave junto com o campaign_id
func (m *DailyMetric) DateKey() string {
	return m.Date.Format(time.DateOnly)
}

// ParsedDailyRecord é uma linha da planilha já normalizada, ainda não reconciliada com o banco
type ParsedDailyRecord struct {
	CampaignID  string
	Date        string
	AmountSpent float64
	Leads       int
	Entries     int
	Exits       int
}

// MergedRecord é o payload de escrita por data após a reconciliação
type MergedRecord struct {
	CampaignID  string  `json:"campaign_id"`
	Date        string  `json:"date"`
	AmountSpent float64 `json:"amount_spent"`
	Leads       int     `json:"leads"`
	Clicks      int     `json:"clicks"`
	Entries     int     `json:"entries"`
	Exits       int     `json:"exits"`
}

// SyncResult resume uma sincronização concluída
type SyncResult struct {
	CampaignID string `json:"campaign_id"`
	Synced     int    `json:"synced"`
	TotalLeads int    `json:"total_leads"`
	Message    string `json:"message"`
}
