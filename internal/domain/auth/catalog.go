package auth

import (
	"strings"

	apperrors "github.com/target/mmk-testauth/internal/errors"
)

// Defaults applied when a catalog record omits optional fields.
const (
	DefaultRegion   = "us-east-1"
	DefaultClientID = "4hf07052ctf8f2aqe6j1s0asvc"
)

// LookupDefaults carries the fallback values applied to records that omit
// Region or ClientID. Zero fields fall back to the package defaults.
type LookupDefaults struct {
	Region   string
	ClientID string
}

// Catalog maps environment and user class to an account record. It is built
// once per test run by an external collaborator and read-only afterwards.
type Catalog struct {
	entries  map[Environment]map[UserClass]AccountRecord
	defaults LookupDefaults
}

// CatalogOptions groups inputs for NewCatalog.
type CatalogOptions struct {
	Entries  map[Environment]map[UserClass]AccountRecord
	Defaults LookupDefaults
}

// NewCatalog builds a catalog. Entries are copied so later mutation of the
// input map cannot change a running catalog.
func NewCatalog(opts CatalogOptions) *Catalog {
	defaults := opts.Defaults
	if defaults.Region == "" {
		defaults.Region = DefaultRegion
	}
	if defaults.ClientID == "" {
		defaults.ClientID = DefaultClientID
	}

	entries := make(map[Environment]map[UserClass]AccountRecord, len(opts.Entries))
	for env, classes := range opts.Entries {
		byClass := make(map[UserClass]AccountRecord, len(classes))
		for class, record := range classes {
			byClass[class] = record
		}
		entries[env] = byClass
	}

	return &Catalog{entries: entries, defaults: defaults}
}

// Lookup returns the account record for the environment and user class,
// with Region and ClientID defaults applied to the returned copy. Misses
// name both keys so operators can spot the missing catalog entry without
// dumping the catalog itself.
func (c *Catalog) Lookup(env Environment, class UserClass) (AccountRecord, error) {
	byClass, ok := c.entries[env]
	if !ok {
		return AccountRecord{}, apperrors.CredentialNotFoundf(
			"no credentials configured for environment %q (user class %s)", env, class)
	}

	record, ok := byClass[class]
	if !ok {
		return AccountRecord{}, apperrors.CredentialNotFoundf(
			"no %s credentials configured for environment %q", class, env)
	}

	if record.Region == "" {
		record.Region = c.defaults.Region
	}
	if record.ClientID == "" {
		record.ClientID = c.defaults.ClientID
	}
	return record, nil
}

// Environments returns the environments present in the catalog, for
// diagnostics. Order is unspecified.
func (c *Catalog) Environments() []Environment {
	envs := make([]Environment, 0, len(c.entries))
	for env := range c.entries {
		envs = append(envs, env)
	}
	return envs
}

// Validate checks the catalog once at load time so "missing key" surprises
// become explicit configuration errors before any acquisition attempt.
// Records for tiers that authenticate directly must carry a secret.
func (c *Catalog) Validate(policy StrategyPolicy) error {
	for env, byClass := range c.entries {
		if !env.Known() {
			return apperrors.UnknownEnvironmentf("catalog contains unknown environment %q", env)
		}

		strategy, err := policy.Select(env)
		if err != nil {
			return err
		}

		for class, record := range byClass {
			if !class.Known() {
				return apperrors.Validationf(
					"catalog entry for environment %q has unknown user class code %d", env, int(class))
			}
			if !strings.Contains(record.User, "@") {
				return apperrors.Validationf(
					"catalog entry %q/%s: user %q is not email-shaped", env, class, record.User)
			}
			if strategy == StrategyDirect && record.Secret == "" {
				return apperrors.Validationf(
					"catalog entry %q/%s: secret required for direct authentication", env, class)
			}
		}
	}
	return nil
}
