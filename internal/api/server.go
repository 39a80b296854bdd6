package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/campaign-sheet-sync/internal/api/handler"
	"github.com/vfg2006/campaign-sheet-sync/internal/api/handler/router"
	"github.com/vfg2006/campaign-sheet-sync/internal/config"
	"github.com/vfg2006/campaign-sheet-sync/internal/scheduler"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/campaign"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync"
	"github.com/vfg2006/campaign-sheet-sync/pkg/log"
	"github.com/vfg2006/campaign-sheet-sync/pkg/metrics"
	"github.com/vfg2006/campaign-sheet-sync/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	campaignService campaign.CampaignService,
	syncer sheetsync.Syncer,
	spreadsheetSyncService *scheduler.SpreadsheetSyncService,
	gatherer prometheus.Gatherer,
	httpRecorder metrics.HTTPRecorder,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SpreadsheetSyncService: spreadsheetSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(gatherer)...),
		router.WithRoutes(handler.Campaigns(campaignService, syncer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(httpRecorder),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown aguarda as requisições em andamento, incluindo sincronizações, até o fim do prazo
func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
