// Package testutil provides utilities for testing drupal-settings components.
//
// Key components:
//   - TestEnvironment: a Drupal project laid out on an in-memory or real filesystem
//   - MockReporter / RecordingReporter: Reporter doubles for asserting user output
//   - Assert* helpers for terse checks in table-driven tests
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Permission-bit checks that depend on the OS must use EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
