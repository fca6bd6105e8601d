// Package testutil provides shared helpers for tests: fluent builders for
// conversations and a recording status sink. Internal so the public API
// surface stays free of test-only constructs.
package testutil
