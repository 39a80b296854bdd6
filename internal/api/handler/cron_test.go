package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	repoMocks "github.com/vfg2006/campaign-sheet-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-sheet-sync/internal/api/handler/router"
	"github.com/vfg2006/campaign-sheet-sync/internal/config"
	"github.com/vfg2006/campaign-sheet-sync/internal/scheduler"
	syncMocks "github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync/mocks"
	"go.uber.org/mock/gomock"
)

func newCronRouter(services CronJobServices) router.Router {
	routes := CronJobs(services)
	for i := range routes {
		routes[i].Middlewares = nil
	}
	return router.New(router.WithRoutes(routes...))
}

func TestCronHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{SpreadsheetSync: config.SpreadsheetSync{CronSchedule: "0 2 * * *"}}
	service := scheduler.NewSpreadsheetSyncService(repoMocks.NewMockCampaignRepository(ctrl), syncMocks.NewMockSyncer(ctrl), cfg)

	rt := newCronRouter(CronJobServices{SpreadsheetSyncService: service})

	t.Run("status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sync_cron":"0 2 * * *"`)
	})

	t.Run("tipo inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/meta/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
