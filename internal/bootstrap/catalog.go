package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/target/mmk-testauth/config"
	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
)

// catalogFileRecord is the on-disk shape of one account entry. Keys of the
// surrounding maps are the environment name and the two-digit class code.
type catalogFileRecord struct {
	User     string `json:"user"`
	Secret   string `json:"secret"`
	Region   string `json:"region"`
	ClientID string `json:"client_id"`
}

// LoadCatalog reads the JSON credential catalog named by AUTH_CATALOG_FILE,
// builds the typed catalog with the configured defaults, and validates it
// once against the policy. The core never parses catalog origin formats;
// that responsibility ends here.
func LoadCatalog(cfg config.AuthConfig, policy domainauth.StrategyPolicy) (*domainauth.Catalog, error) {
	if cfg.CatalogFile == "" {
		return nil, fmt.Errorf("AUTH_CATALOG_FILE is required")
	}

	data, err := os.ReadFile(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var raw map[string]map[string]catalogFileRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", cfg.CatalogFile, err)
	}

	entries := make(map[domainauth.Environment]map[domainauth.UserClass]domainauth.AccountRecord, len(raw))
	for envName, classes := range raw {
		env, err := domainauth.ParseEnvironment(envName)
		if err != nil {
			return nil, err
		}

		byClass := make(map[domainauth.UserClass]domainauth.AccountRecord, len(classes))
		for code, record := range classes {
			n, convErr := strconv.Atoi(code)
			if convErr != nil {
				return nil, fmt.Errorf("catalog entry %q has non-numeric user class code %q", envName, code)
			}
			byClass[domainauth.UserClass(n)] = domainauth.AccountRecord{
				User:     record.User,
				Secret:   record.Secret,
				Region:   record.Region,
				ClientID: record.ClientID,
			}
		}
		entries[env] = byClass
	}

	catalog := domainauth.NewCatalog(domainauth.CatalogOptions{
		Entries: entries,
		Defaults: domainauth.LookupDefaults{
			Region:   cfg.DefaultRegion,
			ClientID: cfg.DefaultClientID,
		},
	})

	if err := catalog.Validate(policy); err != nil {
		return nil, err
	}
	return catalog, nil
}
