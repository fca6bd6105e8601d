// Package core provides the shared domain types of agentblend. It defines:
//
//   - Conversations (ordered role/content turns the pipeline reads and extends)
//   - Config (immutable per-run settings with structural validation)
//   - The error taxonomy for pipeline failures
//   - Status events, sinks and the throttled Reporter
//   - Small contracts (Clock, ConversationStore) implemented elsewhere
//
// The package intentionally keeps implementation concerns (HTTP backends,
// orchestration, persistence) out of scope, exposing small interfaces so
// hosts can substitute their own backends in tests and production.
package core
