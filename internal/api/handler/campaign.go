package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/campaign"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync"
	"github.com/vfg2006/campaign-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/campaign-sheet-sync/pkg/log"
	"github.com/vfg2006/campaign-sheet-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SyncSpreadsheetRequest permite sincronizar a partir de um link diferente do salvo na campanha
type SyncSpreadsheetRequest struct {
	SpreadsheetLink string `json:"spreadsheet_link"`
}

func GetCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.GetCampaign(r.Context(), campaignID)
		if err != nil {
			writeCampaignError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetCampaignMetrics(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		result, err := service.GetMetrics(r.Context(), campaignID, domain.MetricsFilters{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			writeCampaignError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func SyncCampaignSpreadsheet(syncer sheetsync.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var req SyncSpreadsheetRequest
		if r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
				return
			}
		}

		result, err := syncer.SyncCampaign(r.Context(), campaignID, req.SpreadsheetLink)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("Sincronização de planilha não concluída")

			apiErrors.WriteError(w, sheetsync.Code(err), err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func writeCampaignError(w http.ResponseWriter, r *http.Request, err error) {
	var campaignErr *campaign.CampaignError
	if errors.As(err, &campaignErr) {
		if campaignErr.Code == apiErrors.ErrDatabaseOperation {
			apiErrors.WriteError(w, campaignErr.Code, "Erro ao consultar o banco de dados", nil)
			return
		}
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithField("error", err.Error()).Error("Erro inesperado ao consultar campanha")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar campanha", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}
