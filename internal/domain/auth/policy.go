package auth

import (
	apperrors "github.com/target/mmk-testauth/internal/errors"
)

// StrategyPolicy is the declarative dispatch table from environment to
// acquisition strategy. Keeping the rule as data rather than name-pattern
// logic makes adding an environment a one-line, auditable change.
type StrategyPolicy map[Environment]Strategy

// DefaultStrategyPolicy returns the standard policy: console-login-only
// tiers parse a pasted token, everything else authenticates directly.
func DefaultStrategyPolicy() StrategyPolicy {
	return StrategyPolicy{
		EnvDev:  StrategyDirect,
		EnvQA:   StrategyDirect,
		EnvDemo: StrategyDirect,
		EnvProd: StrategyPastedToken,
	}
}

// Select returns the strategy for the environment. An environment without a
// policy row is treated the same as an unrecognized label.
func (p StrategyPolicy) Select(env Environment) (Strategy, error) {
	strategy, ok := p[env]
	if !ok {
		return "", apperrors.UnknownEnvironmentf("no acquisition strategy configured for environment %q", env)
	}
	return strategy, nil
}
