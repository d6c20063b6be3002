package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/mmk-testauth/config"
	"github.com/target/mmk-testauth/internal/adapters/ambient"
	"github.com/target/mmk-testauth/internal/adapters/cognito"
	"github.com/target/mmk-testauth/internal/adapters/memsession"
	"github.com/target/mmk-testauth/internal/adapters/pastedtoken"
	redisadapter "github.com/target/mmk-testauth/internal/adapters/redis"
	"github.com/target/mmk-testauth/internal/claims"
	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	"github.com/target/mmk-testauth/internal/observability/statsd"
	"github.com/target/mmk-testauth/internal/ports"
	"github.com/target/mmk-testauth/internal/service"
)

// AcquireDeps carries everything BuildAcquireService needs.
type AcquireDeps struct {
	Config  *config.AppConfig
	Catalog *domainauth.Catalog
	Policy  domainauth.StrategyPolicy
	Logger  *slog.Logger
}

// BuildAcquireService wires the resolver, providers, session store, and
// metrics into an AcquireService per configuration.
func BuildAcquireService(deps AcquireDeps) (*service.AcquireService, error) {
	cfg := deps.Config

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("credential catalog loaded", "environments", deps.Catalog.Environments())

	direct, err := cognito.NewProvider(cognito.Config{
		Endpoint:  cfg.Auth.Endpoint,
		TokenPath: cfg.Auth.TokenPath,
		Timeout:   cfg.Auth.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build direct authenticator: %w", err)
	}

	sessions, err := buildSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build statsd client: %w", err)
	}

	return service.NewAcquireService(service.AcquireServiceOptions{
		Resolver: ambient.NewResolver(ambient.Config{}),
		Catalog:  deps.Catalog,
		Policy:   deps.Policy,
		Providers: []ports.TokenProvider{
			direct,
			pastedtoken.NewProvider(),
		},
		Sessions: sessions,
		Expiry:   claims.Expiry,
		Metrics:  metrics,
		Logger:   logger,
	}), nil
}

//nolint:ireturn // the backend is selected at runtime from configuration.
func buildSessionStore(cfg *config.AppConfig) (ports.SessionStore, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return redisadapter.NewSessionStore(client, cfg.Session.RunID), nil
	case config.SessionBackendMemory:
		return memsession.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
