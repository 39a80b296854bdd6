package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-sheet-sync/internal/scheduler"
	"github.com/vfg2006/campaign-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/campaign-sheet-sync/pkg/log"
)

const (
	CronJobTypeSpreadsheet = "spreadsheet"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	SpreadsheetSyncService *scheduler.SpreadsheetSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("job", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeSpreadsheet:
			if services.SpreadsheetSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de planilhas não disponível", nil)
				return
			}

			if !services.SpreadsheetSyncService.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização de planilhas já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: spreadsheet", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SpreadsheetSyncService != nil {
			status[CronJobTypeSpreadsheet] = services.SpreadsheetSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
