package main

import (
	"context"
	"log/slog"
	"os"

	"steeple/config"
	"steeple/internal/delivery"
	"steeple/internal/delivery/worker"
	"steeple/internal/delivery/worker/handler"
	"steeple/internal/domain/repository"
	"steeple/internal/domain/service"
	logs "steeple/internal/infra/log"
	"steeple/internal/infra/persistence/postgres"
	"steeple/internal/infra/push"
	"steeple/internal/usecase"
	"steeple/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTokenRepository,
			postgres.NewMemberRepository,
			postgres.NewNotificationRepository,
			postgres.NewDevotionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		push.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDispatchService,
			newRankingService,
			impl.NewMaintenanceService,
		),
	)
}

// newDispatchService wires the configured batch size into the dispatch service
func newDispatchService(
	cfg *config.Config,
	gateway service.PushGateway,
	tokenRepo repository.TokenRepository,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return impl.NewDispatchService(gateway, tokenRepo, notificationRepo, txManager, cfg.Push.BatchSize, logger)
}

// newRankingService wires the ranking configuration into the ranking service
func newRankingService(
	cfg *config.Config,
	devotionRepo repository.DevotionRepository,
	dispatcher usecase.DispatchUsecase,
	logger *slog.Logger,
) (usecase.RankingUsecase, error) {
	return impl.NewRankingService(devotionRepo, dispatcher, impl.RankingParams{
		Timezone: cfg.Ranking.Timezone,
		TopN:     cfg.Ranking.TopN,
		Title:    cfg.Ranking.Title,
		Body:     cfg.Ranking.Body,
	}, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewJobHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
