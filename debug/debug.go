//go:build !debug

// Package debug exposes the build-time debug flag. Building with
// -tags=debug keeps the logger active under go test.
package debug

const Debug = false
