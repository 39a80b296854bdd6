package campaign

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignIDRequired = errors.New("campaign ID is required")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrInvalidDateRange   = errors.New("start_date must not be after end_date")
	ErrFetchCampaign      = errors.New("error fetching campaign from database")
	ErrFetchMetrics       = errors.New("error fetching daily metrics from database")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
