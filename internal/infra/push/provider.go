// Package push selects and wires the configured push gateway.
package push

import (
	"context"
	"log/slog"
	"time"

	"steeple/config"
	"steeple/internal/domain/constants"
	"steeple/internal/domain/service"
	"steeple/internal/infra/push/expo"
	"steeple/internal/infra/push/fcm"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopGateway is a no-op implementation when push delivery is disabled.
type noopGateway struct {
	logger *slog.Logger
}

func (g *noopGateway) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	g.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
	)

	return len(tokens), 0, nil, nil
}

func (g *noopGateway) MaxBatchSize() int {
	return 100
}

// GatewayParams holds dependencies for PushGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway creates a PushGateway based on configuration
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Push
	logger := params.Logger

	// If no provider is configured, return a no-op gateway
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push not configured, using no-op gateway")

		return &noopGateway{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PushProviderExpo:
		baseURL := ""
		timeout := time.Duration(0)
		if cfg.Expo != nil {
			baseURL = cfg.Expo.BaseURL
			timeout = cfg.Expo.Timeout
		}
		logger.Info("Using Expo push gateway",
			slog.String("base_url", baseURL),
		)

		return expo.NewClient(baseURL, timeout, logger), nil

	case constants.PushProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for fcm provider")
		}
		logger.Info("Using Firebase push gateway",
			slog.String("project_id", cfg.Firebase.ProjectID),
		)

		return fcm.NewClient(params.Ctx, cfg.Firebase.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushGateway),
)
