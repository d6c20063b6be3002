package claims

// Package claims reads bookkeeping fields from issued tokens without
// validating them. Signature and claim validation stay with downstream
// consumers; expiry is peeked only so session stores can apply a TTL.

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry returns the exp claim of a JWT without verifying its signature.
// It returns the zero time when the token is not a parseable JWT or carries
// no exp claim, which callers treat as "expiry unknown".
func Expiry(token string) time.Time {
	parser := jwt.NewParser()
	mapClaims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mapClaims); err != nil {
		return time.Time{}
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Subject returns the sub claim of a JWT without verifying its signature,
// or empty string when absent.
func Subject(token string) string {
	parser := jwt.NewParser()
	mapClaims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mapClaims); err != nil {
		return ""
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
