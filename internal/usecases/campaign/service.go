package campaign

//go:generate mockgen -destination=mocks/mock_campaign.go -package=mocks github.com/vfg2006/campaign-sheet-sync/internal/usecases/campaign CampaignService

import (
	"context"

	"github.com/vfg2006/campaign-sheet-sync/infrastructure/repository"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
	"github.com/vfg2006/campaign-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/campaign-sheet-sync/pkg/log"
)

type CampaignService interface {
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	GetMetrics(ctx context.Context, campaignID string, filters domain.MetricsFilters) (*domain.CampaignMetricsResponse, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	metricRepo   repository.DailyMetricRepository
}

func NewService(campaignRepo repository.CampaignRepository, metricRepo repository.DailyMetricRepository) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		metricRepo:   metricRepo,
	}
}

func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao buscar campanha")
		return nil, NewCampaignError(ErrFetchCampaign, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return campaign, nil
}

// GetMetrics retorna as métricas diárias do período com os indicadores calculados e o resumo
func (s *Service) GetMetrics(ctx context.Context, campaignID string, filters domain.MetricsFilters) (*domain.CampaignMetricsResponse, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, NewCampaignError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, campaignID, "")
	}

	campaign, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.metricRepo.ListByDateRange(ctx, campaignID, filters.StartDate, filters.EndDate)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao buscar métricas diárias")
		return nil, NewCampaignError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	insights := make([]domain.DailyMetricInsight, 0, len(metrics))
	for _, metric := range metrics {
		insights = append(insights, domain.CalculateDailyInsight(metric))
	}

	return &domain.CampaignMetricsResponse{
		Campaign: campaign,
		Metrics:  insights,
		Summary:  domain.SummarizeMetrics(metrics),
	}, nil
}
