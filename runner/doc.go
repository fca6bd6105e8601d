// Package runner manages concurrent synthesis runs on top of the agentblend
// façade.
//
// It adds what the stateless pipeline deliberately leaves out: session-scoped
// conversation persistence, per-run cancellation, and channel-based status
// delivery. Each Start call extends one stored conversation with the user's
// prompt, executes the pipeline in the background, and persists the updated
// conversation when the run succeeds.
//
// # Responsibilities (abridged)
//   - Run lifecycle: launch, cancellation, deregistration of finished runs
//   - Conversation persistence via core.ConversationStore
//   - Status event delivery through a buffered per-run channel
//   - Synchronous convenience path (RunSync)
//
// See runner.go for the operational implementation details.
package runner
