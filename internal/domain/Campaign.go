package domain

import "time"

// Campaign representa um lançamento acompanhado com suas metas
type Campaign struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	LeadsGoal       int       `json:"leads_goal"`
	CPLGoal         float64   `json:"cpl_goal"`
	EntryRateMin    float64   `json:"entry_rate_min"`
	ExitRateMax     float64   `json:"exit_rate_max"`
	SpreadsheetLink *string   `json:"spreadsheet_link"`
	CreatedAt       time.Time `json:"created_at"`
}

// HasSpreadsheet indica se a campanha possui um link de planilha configurado
func (c *Campaign) HasSpreadsheet() bool {
	return c != nil && c.SpreadsheetLink != nil && *c.SpreadsheetLink != ""
}
