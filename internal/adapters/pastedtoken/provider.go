package pastedtoken

// Package pastedtoken implements the pasted-token strategy for tiers where
// direct authentication is disallowed: the operator authenticates in a web
// console and pastes the raw authorization header copied from its network
// inspector.

import (
	"context"
	"strings"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	apperrors "github.com/target/mmk-testauth/internal/errors"
	"github.com/target/mmk-testauth/internal/ports"
)

// Parse error reasons, stable for callers that branch on them.
const (
	ReasonMissingBearerMarker = "missing-bearer-marker"
	ReasonEmptyToken          = "empty-token"
)

const bearerMarker = "Bearer"

// Provider implements ports.TokenProvider by parsing the operator-supplied
// header. No network traffic is involved; failures mean the operator must
// re-paste a fresh token.
type Provider struct{}

var _ ports.TokenProvider = Provider{}

// NewProvider returns the pasted-token provider.
func NewProvider() Provider { return Provider{} }

// Strategy implements ports.TokenProvider.
func (Provider) Strategy() domainauth.Strategy { return domainauth.StrategyPastedToken }

// Acquire implements ports.TokenProvider.
func (Provider) Acquire(_ context.Context, in ports.AcquireInput) (string, error) {
	return Parse(in.PastedHeader)
}

// Parse extracts the token from a raw header of the shape
// `"authorization": "Bearer <token>"`. Surrounding quotes and whitespace are
// trimmed from the token material.
func Parse(raw string) (string, error) {
	idx := strings.Index(raw, bearerMarker)
	if idx < 0 {
		return "", apperrors.Parse(ReasonMissingBearerMarker,
			"pasted header has no Bearer marker")
	}

	token := strings.TrimSpace(raw[idx+len(bearerMarker):])
	token = strings.Trim(token, `"'`)
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperrors.Parse(ReasonEmptyToken,
			"pasted header has an empty token after the Bearer marker")
	}
	return token, nil
}
