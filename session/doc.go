// Package session houses concrete implementations of core.ConversationStore.
// The interface itself lives in the core package to centralize domain
// contracts; keeping only implementations here prevents higher level
// packages (engine, runner) from depending on concrete storage.
//
// Add additional backends (Redis, Postgres, etc.) in subpackages without
// changing any calling code; only the wiring layer decides which
// implementation to instantiate.
package session
