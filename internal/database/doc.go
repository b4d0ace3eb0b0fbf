// Package database provides MongoDB connectivity.
//
// Manager owns the single shared client handle: lazily constructed on first
// Acquire, shared across requests, released exactly once via Shutdown.
package database
