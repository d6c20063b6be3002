package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := Auth("provider rejected credentials")
	assert.Equal(t, "provider rejected credentials", err.Error())

	wrapped := Wrap(errors.New("connection refused"), ErrCodeAuth, "provider request failed")
	assert.Equal(t, "provider request failed: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "wiring failed")

	assert.ErrorIs(t, err, cause)
}

func TestWrap_NilErr(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeAuth, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeAuth, "ignored %d", 1))
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
		code  ErrorCode
	}{
		{UnknownEnvironmentf("label %q", "staging"), IsUnknownEnvironment, ErrCodeUnknownEnvironment},
		{CredentialNotFoundf("env %q class %q", "qa", "admin"), IsCredentialNotFound, ErrCodeCredentialNotFound},
		{Authf("status %d", 400), IsAuth, ErrCodeAuth},
		{Parse("empty-token", "empty token"), IsParse, ErrCodeParse},
		{Validationf("bad %s", "field"), IsValidation, ErrCodeValidation},
		{Internal("wiring"), IsInternal, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.True(t, tt.check(tt.err), "predicate for %s", tt.code)
		assert.Equal(t, tt.code, GetCode(tt.err))
	}
}

func TestPredicates_RejectOtherCodes(t *testing.T) {
	err := Auth("nope")

	assert.False(t, IsParse(err))
	assert.False(t, IsCredentialNotFound(err))
	assert.False(t, IsUnknownEnvironment(err))
}

func TestPredicates_ThroughWrapping(t *testing.T) {
	inner := CredentialNotFound("no qa admin entry")
	outer := fmt.Errorf("acquire: %w", inner)

	assert.True(t, IsCredentialNotFound(outer))
	assert.Equal(t, ErrCodeCredentialNotFound, GetCode(outer))
}

func TestGetReason(t *testing.T) {
	err := Parse("missing-bearer-marker", "no marker found")

	require.Equal(t, "missing-bearer-marker", GetReason(err))
	assert.Empty(t, GetReason(errors.New("plain")))
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
}
