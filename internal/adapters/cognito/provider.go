package cognito

// Package cognito implements the direct-authentication strategy: a single
// synchronous password-grant exchange against the identity provider's token
// endpoint.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	apperrors "github.com/target/mmk-testauth/internal/errors"
	"github.com/target/mmk-testauth/internal/ports"
)

const (
	endpointFormat = "https://cognito-idp.%s.amazonaws.com/"
	contentType    = "application/x-amz-json-1.1"
	amzTarget      = "AWSCognitoIdentityProviderService.InitiateAuth"

	// DefaultTokenPath locates the issued token in the provider response.
	DefaultTokenPath = "AuthenticationResult.IdToken"

	// maxErrorBody bounds how much of a failure response we read back into
	// an error message.
	maxErrorBody = 2048
)

// Config captures the subset of identity-provider behaviour we need.
type Config struct {
	// Endpoint overrides the per-region endpoint. Used by tests.
	Endpoint string

	// TokenPath is the JMESPath expression locating the issued token in the
	// response body. Defaults to DefaultTokenPath.
	TokenPath string

	Timeout time.Duration
	Client  *http.Client
}

// Provider implements ports.TokenProvider for direct password-grant
// authentication. The exchange is synchronous; the caller suspends until the
// provider responds or the attempt fails. No retry happens at this layer.
type Provider struct {
	endpoint  string
	tokenPath string
	client    *http.Client
}

var _ ports.TokenProvider = (*Provider)(nil)

// NewProvider builds a direct authenticator. The token path is compiled once
// here so a bad expression surfaces at wiring time, not mid-attempt.
func NewProvider(cfg Config) (*Provider, error) {
	tokenPath := strings.TrimSpace(cfg.TokenPath)
	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	if _, err := jmespath.Compile(tokenPath); err != nil {
		return nil, fmt.Errorf("compile token path %q: %w", tokenPath, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Provider{
		endpoint:  strings.TrimSpace(cfg.Endpoint),
		tokenPath: tokenPath,
		client:    hc,
	}, nil
}

// Strategy implements ports.TokenProvider.
func (p *Provider) Strategy() domainauth.Strategy { return domainauth.StrategyDirect }

// initiateAuthRequest is the wire shape of the password-grant operation.
type initiateAuthRequest struct {
	AuthFlow       string            `json:"AuthFlow"`
	ClientID       string            `json:"ClientId"`
	AuthParameters map[string]string `json:"AuthParameters"`
}

// Acquire performs the password-grant exchange and extracts the issued token
// verbatim. No signature or claim validation happens here; that is deferred
// to downstream consumers.
func (p *Provider) Acquire(ctx context.Context, in ports.AcquireInput) (string, error) {
	record := in.Record
	if record.User == "" || record.Secret == "" {
		return "", apperrors.Auth("direct authentication requires both user and secret")
	}

	body, err := json.Marshal(initiateAuthRequest{
		AuthFlow: "USER_PASSWORD_AUTH",
		ClientID: record.ClientID,
		AuthParameters: map[string]string{
			"USERNAME": record.User,
			"PASSWORD": record.Secret,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpointFor(record.Region), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create auth request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Target", amzTarget)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.ErrCodeAuth,
			"identity provider request failed for user %s", record.User)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", providerError(resp)
	}

	return p.extractToken(resp.Body)
}

func (p *Provider) endpointFor(region string) string {
	if p.endpoint != "" {
		return p.endpoint
	}
	return fmt.Sprintf(endpointFormat, region)
}

// extractToken decodes the response body and evaluates the configured token
// path against it. Any shape without a non-empty string at that path is a
// protocol violation and fails the attempt.
func (p *Provider) extractToken(body io.Reader) (string, error) {
	var payload any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeAuth, "decode identity provider response")
	}

	value, err := jmespath.Search(p.tokenPath, payload)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.ErrCodeAuth, "evaluate token path %q", p.tokenPath)
	}

	token, ok := value.(string)
	if !ok || token == "" {
		return "", apperrors.Authf("identity provider response has no token at %q", p.tokenPath)
	}
	return token, nil
}

// providerError summarizes a non-success provider response without leaking
// request credentials.
func providerError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var detail struct {
		Type    string `json:"__type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(snippet, &detail); err == nil && detail.Type != "" {
		return apperrors.Authf("identity provider rejected authentication: %s (%s)", detail.Type, resp.Status)
	}
	return apperrors.Authf("identity provider returned %s", resp.Status)
}
