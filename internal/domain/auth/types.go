package auth

// Package auth contains domain-level types for test-session credential
// acquisition. It is pure and free of adapter concerns.

import (
	"errors"
	"time"

	apperrors "github.com/target/mmk-testauth/internal/errors"
)

// Environment is a named deployment tier with its own identity-provider
// configuration. The set is closed; adding a tier means adding a constant
// here plus one row in the strategy policy table.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvQA   Environment = "qa"
	EnvDemo Environment = "demo"
	EnvProd Environment = "prod"
)

// Known reports whether the environment is one of the recognized tiers.
func (e Environment) Known() bool {
	switch e {
	case EnvDev, EnvQA, EnvDemo, EnvProd:
		return true
	default:
		return false
	}
}

// ParseEnvironment maps a normalized label to a recognized environment.
// Unrecognized labels are an error, never a default: defaulting would
// authenticate against the wrong tier's identity provider.
func ParseEnvironment(label string) (Environment, error) {
	env := Environment(label)
	if !env.Known() {
		return "", apperrors.UnknownEnvironmentf("unknown environment label %q", label)
	}
	return env, nil
}

// UserClass selects which account to authenticate as. Values mirror the
// two-digit codes used by the credential catalogs.
type UserClass int

const (
	ClassAdmin      UserClass = 0
	ClassRegular    UserClass = 1
	ClassCustom     UserClass = 2
	ClassAutomation UserClass = 99
)

// Known reports whether the class is one of the recognized codes.
func (c UserClass) Known() bool {
	switch c {
	case ClassAdmin, ClassRegular, ClassCustom, ClassAutomation:
		return true
	default:
		return false
	}
}

// String returns the human-readable class name used in logs and errors.
func (c UserClass) String() string {
	switch c {
	case ClassAdmin:
		return "admin"
	case ClassRegular:
		return "regular"
	case ClassCustom:
		return "custom"
	case ClassAutomation:
		return "automation"
	default:
		return "unknown"
	}
}

// AccountRecord is one authenticable identity from the credential catalog.
type AccountRecord struct {
	// User is the email-shaped account identifier.
	User string
	// Secret is the password presented on direct authentication. It never
	// leaves the process and must not appear in errors or logs.
	Secret string
	// Region addresses the identity-provider endpoint.
	Region string
	// ClientID identifies the requesting application to the provider tenant.
	ClientID string
}

// Strategy names a token-acquisition strategy.
type Strategy string

const (
	// StrategyDirect exchanges username/password with the identity provider.
	StrategyDirect Strategy = "direct"
	// StrategyPastedToken parses a token the operator obtained out-of-band
	// from a web console.
	StrategyPastedToken Strategy = "pasted-token"
)

// Session is the run-scoped credential record shared by all later API calls
// in a test run. It is overwritten wholesale on each successful acquisition.
type Session struct {
	IDToken   string    `json:"id_token"`
	User      string    `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ErrNoSession is returned by session stores before the first publish.
var ErrNoSession = errors.New("no session published")
