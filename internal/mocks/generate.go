// Package mocks provides generated mock implementations for testing the
// acquisition flow.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the port interfaces. Hand-written doubles for simple cases live in
// the auth subpackage.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mocks for the acquisition ports:
// TokenProvider, SessionStore, EnvironmentResolver.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mock.go github.com/target/mmk-testauth/internal/ports TokenProvider,SessionStore,EnvironmentResolver
