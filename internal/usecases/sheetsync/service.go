package sheetsync

//go:generate mockgen -destination=mocks/mock_sheetsync.go -package=mocks github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync Syncer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet"
	spreadsheetdomain "github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet/domain"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/repository"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
	"github.com/vfg2006/campaign-sheet-sync/pkg/log"
	"github.com/vfg2006/campaign-sheet-sync/pkg/metrics"
)

const successMessage = "%d dias sincronizados com sucesso!"

type Syncer interface {
	// Sync importa a planilha e devolve quantas datas foram gravadas
	Sync(ctx context.Context, campaignID, spreadsheetURL string) (int, error)
	// SyncCampaign usa o link salvo na campanha, ou overrideLink quando informado
	SyncCampaign(ctx context.Context, campaignID, overrideLink string) (*domain.SyncResult, error)
}

type Service struct {
	spreadsheet  spreadsheet.SpreadsheetIntegrator
	campaignRepo repository.CampaignRepository
	metricRepo   repository.DailyMetricRepository
	recorder     metrics.SyncRecorder

	mu      sync.Mutex
	running map[string]struct{}
}

func NewService(
	spreadsheetIntegrator spreadsheet.SpreadsheetIntegrator,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.DailyMetricRepository,
	recorder metrics.SyncRecorder,
) *Service {
	if recorder == nil {
		recorder = metrics.Noop{}
	}

	return &Service{
		spreadsheet:  spreadsheetIntegrator,
		campaignRepo: campaignRepo,
		metricRepo:   metricRepo,
		recorder:     recorder,
		running:      make(map[string]struct{}),
	}
}

func (s *Service) Sync(ctx context.Context, campaignID, spreadsheetURL string) (int, error) {
	result, err := s.run(ctx, campaignID, spreadsheetURL)
	if err != nil {
		return 0, err
	}
	return result.Synced, nil
}

func (s *Service) SyncCampaign(ctx context.Context, campaignID, overrideLink string) (*domain.SyncResult, error) {
	link := strings.TrimSpace(overrideLink)

	if link == "" {
		campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return nil, newSyncError(ErrStore, err, StateIdle, campaignID)
		}
		if campaign == nil {
			return nil, newSyncError(ErrCampaignNotFound, nil, StateIdle, campaignID)
		}
		if !campaign.HasSpreadsheet() {
			return nil, newSyncError(ErrMissingSpreadsheetLink, nil, StateIdle, campaignID)
		}
		link = *campaign.SpreadsheetLink
	}

	return s.run(ctx, campaignID, link)
}

// run executa as etapas em sequência; qualquer falha encerra a execução no estado failed
func (s *Service) run(ctx context.Context, campaignID, spreadsheetURL string) (*domain.SyncResult, error) {
	if !s.acquire(campaignID) {
		s.recorder.ObserveSync(metrics.OutcomeSkipped, StateIdle.String(), 0, 0)
		log.ForContext(ctx).WithField("campaign_id", campaignID).Warn("Sincronização ignorada: já existe uma execução para a campanha")
		return nil, newSyncError(ErrSyncInProgress, nil, StateIdle, campaignID)
	}
	defer s.release(campaignID)

	startTime := time.Now()
	tracker := &runTracker{ctx: ctx, campaignID: campaignID}

	result, syncErr := s.pipeline(ctx, tracker, campaignID, spreadsheetURL)
	if syncErr != nil {
		tracker.fail(syncErr)
		s.recorder.ObserveSync(metrics.OutcomeFailure, syncErr.Stage.String(), time.Since(startTime), 0)
		return nil, syncErr
	}

	tracker.transition(StateDone)
	s.recorder.ObserveSync(metrics.OutcomeSuccess, StateDone.String(), time.Since(startTime), result.Synced)

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"records":     result.Synced,
		"total_leads": result.TotalLeads,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Sincronização de planilha concluída")

	return result, nil
}

func (s *Service) pipeline(ctx context.Context, tracker *runTracker, campaignID, spreadsheetURL string) (*domain.SyncResult, *SyncError) {
	fail := func(kind, cause error) (*domain.SyncResult, *SyncError) {
		return nil, newSyncError(kind, cause, tracker.state, campaignID)
	}

	tracker.transition(StateFetching)
	doc, err := s.spreadsheet.Download(ctx, spreadsheetURL)
	if err != nil {
		return fail(ErrDownload, err)
	}

	tracker.transition(StateDecoding)
	rows, err := decodeDocument(doc)
	if err != nil {
		return fail(ErrEmptyDocument, err)
	}
	if len(rows) < 2 {
		return fail(ErrEmptyDocument, nil)
	}

	tracker.transition(StateMapping)
	headerRow, columns, err := MapColumns(rows)
	if err != nil {
		return fail(err, nil)
	}

	parsed, err := ExtractRecords(campaignID, rows, headerRow, columns)
	if err != nil {
		return fail(err, nil)
	}

	tracker.transition(StateMerging)
	persisted, err := s.metricRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return fail(ErrStore, err)
	}
	merged := MergeRecords(parsed, persisted)

	tracker.transition(StatePersisting)
	if err := s.metricRepo.UpsertBatch(ctx, merged); err != nil {
		return fail(ErrStore, err)
	}

	totalLeads := TotalLeads(merged)
	if err := s.overwriteLeadsGoal(ctx, campaignID, totalLeads); err != nil {
		return fail(ErrStore, err)
	}

	return &domain.SyncResult{
		CampaignID: campaignID,
		Synced:     len(merged),
		TotalLeads: totalLeads,
		Message:    fmt.Sprintf(successMessage, len(merged)),
	}, nil
}

// overwriteLeadsGoal grava a soma dos leads sincronizados como meta de leads da campanha.
// Substitui qualquer valor definido manualmente.
func (s *Service) overwriteLeadsGoal(ctx context.Context, campaignID string, totalLeads int) error {
	if err := s.campaignRepo.UpdateLeadsGoal(ctx, campaignID, totalLeads); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaignID,
			"total_leads": totalLeads,
			"error":       err.Error(),
		}).Error("Métricas gravadas, mas falhou ao atualizar a meta de leads da campanha")
		return err
	}
	return nil
}

func decodeDocument(doc *spreadsheetdomain.Document) ([][]string, error) {
	if doc == nil {
		return [][]string{}, nil
	}
	if doc.IsXLSX() {
		return DecodeXLSX(doc.Body)
	}
	return DecodeCSV(string(doc.Body)), nil
}

func (s *Service) acquire(campaignID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.running[campaignID]; busy {
		return false
	}
	s.running[campaignID] = struct{}{}
	return true
}

func (s *Service) release(campaignID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.running, campaignID)
}

type runTracker struct {
	ctx        context.Context
	campaignID string
	state      State
}

func (t *runTracker) transition(next State) {
	log.ForContext(t.ctx).WithFields(log.Fields{
		"campaign_id": t.campaignID,
		"from":        t.state.String(),
		"state":       next.String(),
	}).Debug("Transição de etapa da sincronização")
	t.state = next
}

func (t *runTracker) fail(err *SyncError) {
	logger := log.ForContext(t.ctx).WithFields(log.Fields{
		"campaign_id": t.campaignID,
		"state":       t.state.String(),
	})
	if err.Cause != nil {
		logger = logger.WithError(err.Cause)
	}
	logger.Warnf("Sincronização de planilha falhou: %s", err.Err.Error())
	t.state = StateFailed
}
