package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-sheet-sync/internal/api/handler/router"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/campaign"
	campaignMocks "github.com/vfg2006/campaign-sheet-sync/internal/usecases/campaign/mocks"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync"
	syncMocks "github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync/mocks"
	"github.com/vfg2006/campaign-sheet-sync/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// newTestRouter registra as rotas de campanha sem os middlewares de autorização
func newTestRouter(service campaign.CampaignService, syncer sheetsync.Syncer) router.Router {
	routes := Campaigns(service, syncer)
	for i := range routes {
		routes[i].Middlewares = nil
	}
	return router.New(router.WithRoutes(routes...))
}

func TestGetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignMocks.NewMockCampaignService(ctrl)
	rt := newTestRouter(service, syncMocks.NewMockSyncer(ctrl))

	t.Run("encontrada", func(t *testing.T) {
		service.EXPECT().GetCampaign(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", Name: "Lançamento"}, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body domain.Campaign
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Lançamento", body.Name)
	})

	t.Run("não encontrada", func(t *testing.T) {
		service.EXPECT().GetCampaign(gomock.Any(), "c2").Return(nil,
			campaign.NewCampaignError(campaign.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "c2", ""))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c2", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrCampaignNotFound)
	})

	t.Run("erro inesperado", func(t *testing.T) {
		service.EXPECT().GetCampaign(gomock.Any(), "c3").Return(nil, errors.New("boom"))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c3", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetCampaignMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignMocks.NewMockCampaignService(ctrl)
	rt := newTestRouter(service, syncMocks.NewMockSyncer(ctrl))

	t.Run("com filtros", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

		service.EXPECT().
			GetMetrics(gomock.Any(), "c1", domain.MetricsFilters{StartDate: &start, EndDate: &end}).
			Return(&domain.CampaignMetricsResponse{
				Campaign: &domain.Campaign{ID: "c1"},
				Metrics:  []domain.DailyMetricInsight{},
				Summary:  &domain.MetricsSummary{TotalLeads: 12},
			}, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1/metrics?start_date=2024-01-01&end_date=2024-01-31", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_leads":12`)
	})

	t.Run("data inválida", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1/metrics?start_date=01/01/2024", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidFormat)
	})
}

func TestSyncCampaignSpreadsheet(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(syncer *syncMocks.MockSyncer)
		wantStatus int
		wantBody   string
	}{
		{
			name: "sucesso com link salvo",
			body: "",
			setup: func(syncer *syncMocks.MockSyncer) {
				syncer.EXPECT().SyncCampaign(gomock.Any(), "c1", "").Return(&domain.SyncResult{
					CampaignID: "c1", Synced: 2, TotalLeads: 10, Message: "2 dias sincronizados com sucesso!",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"synced":2`,
		},
		{
			name: "link informado no corpo",
			body: `{"spreadsheet_link":"https://docs.google.com/spreadsheets/d/x/edit"}`,
			setup: func(syncer *syncMocks.MockSyncer) {
				syncer.EXPECT().SyncCampaign(gomock.Any(), "c1", "https://docs.google.com/spreadsheets/d/x/edit").
					Return(&domain.SyncResult{CampaignID: "c1", Synced: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"synced":1`,
		},
		{
			name:       "corpo inválido",
			body:       `{"spreadsheet_link":`,
			setup:      func(syncer *syncMocks.MockSyncer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "sincronização em andamento",
			setup: func(syncer *syncMocks.MockSyncer) {
				syncer.EXPECT().SyncCampaign(gomock.Any(), "c1", "").
					Return(nil, &sheetsync.SyncError{Err: sheetsync.ErrSyncInProgress, Code: apiErrors.ErrSyncInProgress})
			},
			wantStatus: http.StatusConflict,
			wantBody:   "Sincronização já em andamento para esta campanha",
		},
		{
			name: "cabeçalho ausente",
			setup: func(syncer *syncMocks.MockSyncer) {
				syncer.EXPECT().SyncCampaign(gomock.Any(), "c1", "").
					Return(nil, &sheetsync.SyncError{Err: sheetsync.ErrMissingHeader, Code: apiErrors.ErrSpreadsheetHeader})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Colunas não encontradas (Day, Amount Spent, Leads)",
		},
		{
			name: "planilha inacessível",
			setup: func(syncer *syncMocks.MockSyncer) {
				syncer.EXPECT().SyncCampaign(gomock.Any(), "c1", "").
					Return(nil, &sheetsync.SyncError{Err: sheetsync.ErrDownload, Code: apiErrors.ErrSpreadsheetDownload})
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   apiErrors.ErrSpreadsheetDownload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			syncer := syncMocks.NewMockSyncer(ctrl)
			tt.setup(syncer)

			rt := newTestRouter(campaignMocks.NewMockCampaignService(ctrl), syncer)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/c1/sync", strings.NewReader(tt.body))
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
