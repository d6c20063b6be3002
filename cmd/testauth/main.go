package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/target/mmk-testauth/internal/bootstrap"
	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	"github.com/target/mmk-testauth/internal/service"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

// run performs a single acquisition attempt and writes the issued token to
// stdout, where harness scripts capture it.
func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	policy := domainauth.DefaultStrategyPolicy()
	catalog, err := bootstrap.LoadCatalog(cfg.Auth, policy)
	if err != nil {
		return err
	}

	svc, err := bootstrap.BuildAcquireService(bootstrap.AcquireDeps{
		Config:  &cfg,
		Catalog: catalog,
		Policy:  policy,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	sess, err := svc.Acquire(ctx, service.AcquireRequest{
		// Environment left empty: resolve from the ambient context (TEST_ENV).
		UserClass:    domainauth.UserClass(cfg.Auth.UserClass),
		PastedHeader: cfg.Auth.PastedHeader,
	})
	if err != nil {
		return err
	}

	fmt.Println(sess.IDToken)
	return nil
}
