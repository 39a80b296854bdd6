package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/repository"
	"github.com/vfg2006/campaign-sheet-sync/internal/config"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync"
	"github.com/vfg2006/campaign-sheet-sync/pkg/log"
)

// SpreadsheetSyncConfig representa a configuração do agendador de planilhas
type SpreadsheetSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// SpreadsheetSyncService sincroniza periodicamente as planilhas de todas as campanhas com link configurado
type SpreadsheetSyncService struct {
	scheduler    *gocron.Scheduler
	config       SpreadsheetSyncConfig
	campaignRepo repository.CampaignRepository
	syncer       sheetsync.Syncer

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSucceeded   int
	lastSyncFailed      int
	lastSyncSkipped     int
}

func NewSpreadsheetSyncService(
	campaignRepo repository.CampaignRepository,
	syncer sheetsync.Syncer,
	appConfig *config.Config,
) *SpreadsheetSyncService {
	syncConfig := SpreadsheetSyncConfig{
		CronSchedule:        appConfig.SpreadsheetSync.CronSchedule,
		RequestDelaySeconds: appConfig.SpreadsheetSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.SpreadsheetSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"job":                   "spreadsheet",
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de planilhas carregada")

	return &SpreadsheetSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		campaignRepo: campaignRepo,
		syncer:       syncer,
	}
}

// Start inicia o agendador
func (s *SpreadsheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Sincronização agendada de planilhas desabilitada por configuração")
		return nil
	}

	log.L.WithField("job", "spreadsheet").Infof("Iniciando agendador de planilhas (cron %s)", s.config.CronSchedule)

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de sincronização de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns roda a sincronização de cada campanha em sequência.
// A falha de uma campanha não interrompe as demais.
func (s *SpreadsheetSyncService) syncAllCampaigns(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.WithField("job", "spreadsheet").Info("Sincronização de planilhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("job", "spreadsheet")
	startTime := time.Now()

	var succeeded, failed, skipped int
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncSucceeded = succeeded
		s.lastSyncFailed = failed
		s.lastSyncSkipped = skipped
		s.syncMutex.Unlock()
	}()

	campaigns, err := s.campaignRepo.ListWithSpreadsheet(ctx)
	if err != nil {
		logger.WithField("error", err.Error()).Error("Erro ao buscar campanhas para sincronização de planilhas")
		return
	}

	if len(campaigns) == 0 {
		logger.Info("Nenhuma campanha com planilha configurada")
		return
	}

	for i, campaign := range campaigns {
		if ctx.Err() != nil {
			logger.Warn("Sincronização de planilhas interrompida pelo cancelamento do contexto")
			return
		}

		result, err := s.syncer.SyncCampaign(ctx, campaign.ID, "")
		switch {
		case errors.Is(err, sheetsync.ErrSyncInProgress):
			skipped++
		case err != nil:
			failed++
			logger.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Erro ao sincronizar planilha da campanha")
		default:
			succeeded++
			logger.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"records":     result.Synced,
			}).Info(result.Message)
		}

		if i < len(campaigns)-1 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	logger.WithField("duration_ms", time.Since(startTime).Milliseconds()).Infof("Sincronização de planilhas concluída: %d ok, %d com erro, %d ignoradas", succeeded, failed, skipped)
}

// TriggerManualSync inicia manualmente a sincronização de todas as campanhas
func (s *SpreadsheetSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.WithField("job", "spreadsheet").Info("Sincronização de planilhas já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.WithField("job", "spreadsheet").Info("Iniciando sincronização manual de planilhas")
	go s.syncAllCampaigns(context.WithoutCancel(ctx))

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SpreadsheetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_succeeded":    s.lastSyncSucceeded,
		"last_sync_failed":       s.lastSyncFailed,
		"last_sync_skipped":      s.lastSyncSkipped,
	}
}
