package config

import (
	"strings"
	"time"
)

// AuthConfig groups credential-acquisition configuration.
//
// The environment label itself is read separately from TEST_ENV by the
// ambient resolver; everything here shapes how an attempt executes once the
// environment is known.
type AuthConfig struct {
	// UserClass is the two-digit account class code to authenticate as.
	UserClass int `env:"USER_CLASS" envDefault:"99"`

	// PastedHeader is the raw authorization header pasted by the operator,
	// required for console-login-only tiers.
	PastedHeader string `env:"PASTED_HEADER"`

	// DefaultRegion is applied to catalog records that omit a region.
	DefaultRegion string `env:"DEFAULT_REGION" envDefault:"us-east-1"`

	// DefaultClientID is applied to catalog records that omit a client ID.
	DefaultClientID string `env:"DEFAULT_CLIENT_ID" envDefault:"4hf07052ctf8f2aqe6j1s0asvc"`

	// Endpoint overrides the per-region identity-provider endpoint.
	Endpoint string `env:"ENDPOINT"`

	// TokenPath is the JMESPath expression locating the issued token in the
	// provider response.
	TokenPath string `env:"TOKEN_PATH" envDefault:"AuthenticationResult.IdToken"`

	// HTTPTimeout bounds the direct-authentication exchange.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// CatalogFile points at the JSON credential catalog supplied by the
	// harness. Parsing it is bootstrap's job; the core only ever sees the
	// fully built catalog.
	CatalogFile string `env:"CATALOG_FILE"`
}

// Sanitize normalises auth configuration values.
func (c *AuthConfig) Sanitize() {
	c.DefaultRegion = strings.TrimSpace(c.DefaultRegion)
	c.DefaultClientID = strings.TrimSpace(c.DefaultClientID)
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	c.TokenPath = strings.TrimSpace(c.TokenPath)
	c.CatalogFile = strings.TrimSpace(c.CatalogFile)
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 10 * time.Second
	}
}
