package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/mmk-testauth/internal/errors"
)

func testEntries() map[Environment]map[UserClass]AccountRecord {
	return map[Environment]map[UserClass]AccountRecord{
		EnvQA: {
			ClassAdmin: {
				User:     "qa.admin@example.com",
				Secret:   "qa-admin-secret",
				Region:   "us-west-2",
				ClientID: "qa-client",
			},
			ClassAutomation: {
				User:   "qa.automation@example.com",
				Secret: "qa-automation-secret",
			},
		},
		EnvProd: {
			ClassAdmin: {
				User: "prod.admin@example.com",
			},
		},
	}
}

func TestCatalog_Lookup_ReturnsExactRecord(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: testEntries()})

	record, err := catalog.Lookup(EnvQA, ClassAdmin)

	require.NoError(t, err)
	assert.Equal(t, "qa.admin@example.com", record.User)
	assert.Equal(t, "qa-admin-secret", record.Secret)
	assert.Equal(t, "us-west-2", record.Region)
	assert.Equal(t, "qa-client", record.ClientID)
}

func TestCatalog_Lookup_AppliesDefaults(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: testEntries()})

	record, err := catalog.Lookup(EnvQA, ClassAutomation)

	require.NoError(t, err)
	assert.Equal(t, DefaultRegion, record.Region)
	assert.Equal(t, DefaultClientID, record.ClientID)
}

func TestCatalog_Lookup_AppliesCustomDefaults(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{
		Entries:  testEntries(),
		Defaults: LookupDefaults{Region: "eu-central-1", ClientID: "tenant-client"},
	})

	record, err := catalog.Lookup(EnvQA, ClassAutomation)

	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", record.Region)
	assert.Equal(t, "tenant-client", record.ClientID)
}

func TestCatalog_Lookup_MissingEnvironment(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: testEntries()})

	_, err := catalog.Lookup(EnvDemo, ClassAdmin)

	require.Error(t, err)
	assert.True(t, apperrors.IsCredentialNotFound(err))
	// Both keys must be identifiable from the message.
	assert.Contains(t, err.Error(), "demo")
	assert.Contains(t, err.Error(), "admin")
}

func TestCatalog_Lookup_MissingUserClass(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: testEntries()})

	_, err := catalog.Lookup(EnvProd, ClassAutomation)

	require.Error(t, err)
	assert.True(t, apperrors.IsCredentialNotFound(err))
	assert.Contains(t, err.Error(), "prod")
	assert.Contains(t, err.Error(), "automation")
}

func TestCatalog_Lookup_DoesNotMutateEntries(t *testing.T) {
	entries := testEntries()
	catalog := NewCatalog(CatalogOptions{Entries: entries})

	_, err := catalog.Lookup(EnvQA, ClassAutomation)
	require.NoError(t, err)

	// Defaults are applied to the returned copy, never written back.
	assert.Empty(t, entries[EnvQA][ClassAutomation].Region)

	// Mutating the input after construction cannot change the catalog.
	entries[EnvQA][ClassAdmin] = AccountRecord{User: "tampered@example.com"}
	record, err := catalog.Lookup(EnvQA, ClassAdmin)
	require.NoError(t, err)
	assert.Equal(t, "qa.admin@example.com", record.User)
}

func TestCatalog_Environments(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: testEntries()})

	assert.ElementsMatch(t, []Environment{EnvQA, EnvProd}, catalog.Environments())
}

func TestCatalog_Validate_OK(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: testEntries()})

	assert.NoError(t, catalog.Validate(DefaultStrategyPolicy()))
}

func TestCatalog_Validate_SecretRequiredForDirect(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: map[Environment]map[UserClass]AccountRecord{
		EnvQA: {
			ClassAdmin: {User: "qa.admin@example.com"}, // no secret
		},
	}})

	err := catalog.Validate(DefaultStrategyPolicy())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "secret required")
}

func TestCatalog_Validate_NoSecretNeededForPastedToken(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: map[Environment]map[UserClass]AccountRecord{
		EnvProd: {
			ClassAdmin: {User: "prod.admin@example.com"},
		},
	}})

	assert.NoError(t, catalog.Validate(DefaultStrategyPolicy()))
}

func TestCatalog_Validate_RejectsUnknownEnvironment(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: map[Environment]map[UserClass]AccountRecord{
		"staging": {
			ClassAdmin: {User: "a@example.com", Secret: "s"},
		},
	}})

	err := catalog.Validate(DefaultStrategyPolicy())

	require.Error(t, err)
	assert.True(t, apperrors.IsUnknownEnvironment(err))
}

func TestCatalog_Validate_RejectsUnknownUserClass(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: map[Environment]map[UserClass]AccountRecord{
		EnvQA: {
			UserClass(42): {User: "a@example.com", Secret: "s"},
		},
	}})

	err := catalog.Validate(DefaultStrategyPolicy())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "42")
}

func TestCatalog_Validate_RejectsNonEmailUser(t *testing.T) {
	catalog := NewCatalog(CatalogOptions{Entries: map[Environment]map[UserClass]AccountRecord{
		EnvQA: {
			ClassAdmin: {User: "not-an-email", Secret: "s"},
		},
	}})

	err := catalog.Validate(DefaultStrategyPolicy())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
