// Package states registers every state's transform with the prep registry.
// Import this package to ensure all states are registered.
package states

// This file exists to provide a single import point.
// Each state file uses init() to register its transform.
