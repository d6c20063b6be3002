package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	apperrors "github.com/target/mmk-testauth/internal/errors"
	"github.com/target/mmk-testauth/internal/observability/statsd"
	"github.com/target/mmk-testauth/internal/ports"
)

// TokenExpiry reads a token's expiry for session bookkeeping. Implemented
// by internal/claims; injectable so tests can pin expiries.
type TokenExpiry func(token string) time.Time

// AcquireServiceOptions groups dependencies for AcquireService.
type AcquireServiceOptions struct {
	Resolver  ports.EnvironmentResolver
	Catalog   *domainauth.Catalog
	Policy    domainauth.StrategyPolicy
	Providers []ports.TokenProvider
	Sessions  ports.SessionStore
	Expiry    TokenExpiry
	Metrics   statsd.Sink
	Logger    *slog.Logger
}

// AcquireService orchestrates one credential acquisition attempt: resolve
// the environment, look up the account record, select a strategy, run
// exactly one provider, and publish the result. Each step either advances
// or fails the attempt; a failure leaves any previously published session
// untouched.
type AcquireService struct {
	resolver  ports.EnvironmentResolver
	catalog   *domainauth.Catalog
	policy    domainauth.StrategyPolicy
	providers map[domainauth.Strategy]ports.TokenProvider
	sessions  ports.SessionStore
	expiry    TokenExpiry
	metrics   statsd.Sink
	logger    *slog.Logger
	flight    singleflight.Group
}

// NewAcquireService constructs a new AcquireService.
func NewAcquireService(opts AcquireServiceOptions) *AcquireService {
	providers := make(map[domainauth.Strategy]ports.TokenProvider, len(opts.Providers))
	for _, provider := range opts.Providers {
		providers[provider.Strategy()] = provider
	}

	expiry := opts.Expiry
	if expiry == nil {
		expiry = func(string) time.Time { return time.Time{} }
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AcquireService{
		resolver:  opts.Resolver,
		catalog:   opts.Catalog,
		policy:    opts.Policy,
		providers: providers,
		sessions:  opts.Sessions,
		expiry:    expiry,
		metrics:   opts.Metrics,
		logger:    logger,
	}
}

// AcquireRequest describes one acquisition attempt.
type AcquireRequest struct {
	// Environment selects the deployment tier. Empty means "resolve from
	// the ambient execution context".
	Environment domainauth.Environment

	// UserClass selects which account to authenticate as.
	UserClass domainauth.UserClass

	// PastedHeader is the operator-supplied authorization header, required
	// when the selected tier's strategy is pasted-token parsing.
	PastedHeader string
}

// Acquire runs one acquisition attempt and returns the published session.
// Identical concurrent attempts (same environment, user class, and pasted
// header) share one flight; distinct overlapping attempts follow
// last-publish-wins.
func (s *AcquireService) Acquire(ctx context.Context, req AcquireRequest) (domainauth.Session, error) {
	env := req.Environment
	if env == "" {
		resolved, err := s.resolver.Resolve()
		if err != nil {
			s.count("acquire.failure", string(env), "resolve")
			return domainauth.Session{}, err
		}
		env = resolved
	} else if !env.Known() {
		s.count("acquire.failure", string(env), "resolve")
		return domainauth.Session{}, apperrors.UnknownEnvironmentf("unknown environment label %q", string(env))
	}

	// The pasted header is part of the key so two operators pasting
	// different tokens never share one flight.
	key := fmt.Sprintf("%s/%d/%s", env, int(req.UserClass), req.PastedHeader)
	result, err, _ := s.flight.Do(key, func() (any, error) {
		return s.acquire(ctx, env, req)
	})
	if err != nil {
		return domainauth.Session{}, err
	}
	sess, ok := result.(domainauth.Session)
	if !ok {
		return domainauth.Session{}, apperrors.Internal("unexpected acquisition result type")
	}
	return sess, nil
}

func (s *AcquireService) acquire(ctx context.Context, env domainauth.Environment, req AcquireRequest) (domainauth.Session, error) {
	attemptID := uuid.NewString()
	logger := s.logger.With("attempt_id", attemptID, "environment", string(env), "user_class", req.UserClass.String())

	s.count("acquire.attempt", string(env), "")

	record, err := s.catalog.Lookup(env, req.UserClass)
	if err != nil {
		s.count("acquire.failure", string(env), "lookup")
		logger.ErrorContext(ctx, "credential lookup failed", "error", err)
		return domainauth.Session{}, err
	}

	strategy, err := s.policy.Select(env)
	if err != nil {
		s.count("acquire.failure", string(env), "select")
		logger.ErrorContext(ctx, "strategy selection failed", "error", err)
		return domainauth.Session{}, err
	}

	provider, ok := s.providers[strategy]
	if !ok {
		s.count("acquire.failure", string(env), "dispatch")
		return domainauth.Session{}, apperrors.Internalf("no provider wired for strategy %q", strategy)
	}

	logger = logger.With("strategy", string(strategy), "user", record.User)
	logger.InfoContext(ctx, "acquiring token")

	start := time.Now()
	token, err := provider.Acquire(ctx, ports.AcquireInput{
		Record:       record,
		PastedHeader: req.PastedHeader,
	})
	if err != nil {
		s.count("acquire.failure", string(env), string(strategy))
		logger.ErrorContext(ctx, "token acquisition failed", "error", err)
		return domainauth.Session{}, err
	}
	if strategy == domainauth.StrategyDirect {
		s.timing("acquire.exchange", string(env), time.Since(start))
	}

	sess := domainauth.Session{
		IDToken:   token,
		User:      record.User,
		ExpiresAt: s.expiry(token),
	}
	if err := s.sessions.Publish(ctx, sess); err != nil {
		s.count("acquire.failure", string(env), "publish")
		logger.ErrorContext(ctx, "session publish failed", "error", err)
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "publish session")
	}

	s.count("acquire.success", string(env), string(strategy))
	logger.InfoContext(ctx, "token acquired", "expires_at", sess.ExpiresAt)
	return sess, nil
}

// Current returns the most recently published session.
func (s *AcquireService) Current(ctx context.Context) (domainauth.Session, error) {
	return s.sessions.Current(ctx)
}

func (s *AcquireService) count(name, environment, stage string) {
	if s.metrics == nil {
		return
	}
	tags := make(map[string]string, 2)
	if environment != "" {
		tags["environment"] = environment
	}
	if stage != "" {
		tags["stage"] = stage
	}
	s.metrics.Count(name, 1, tags)
}

func (s *AcquireService) timing(name, environment string, d time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.Timing(name, d, map[string]string{"environment": environment})
}
