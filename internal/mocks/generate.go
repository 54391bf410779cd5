// Package mocks provides mock implementations for testing the state core.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the platform port. Hand-written doubles for the same port live in
// the platform subpackage; they cover the common stub cases without
// expectation bookkeeping.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for PlatformClient interface from internal/ports package.
// This creates MockPlatformClient with methods for all PlatformClient
// interface methods: Authenticate, ListJobs, ListApplications,
// SubmitApplication
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=platform_client_mock.go github.com/openhire/mobile-core/internal/ports PlatformClient
