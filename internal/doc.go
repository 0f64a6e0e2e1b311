// Package internal contains the core implementation packages for expressor.
//
// # Package Organization
//
//   - outcome: the success-or-failure value every stage returns
//   - build: the validate, materialize, compile and execute stages, the
//     composer that chains them, and the process runner capability
//   - templates: target template lookup, the embedded fallback template
//     and placeholder substitution
//   - config: viper-backed configuration with defaults and validation
//   - errors: the structured error type behind every failure message,
//     plus fix suggestions keyed by error code
//   - validation: checks on extensions, paths, identifiers and external
//     command lines
//   - logging: slog-backed structured logging
//   - version: build information for the version command
//   - testutils: project fixtures shared by the test suites
//
// # Data Flow
//
// The cmd package loads a config.Config, builds a build.Pipeline and
// evaluates one pipeline once. Each stage receives the previous stage's
// artifact path and returns an outcome.Outcome; the first Failure stops the
// chain and its message becomes the command's error output.
//
// # Testing Strategy
//
//   - Unit tests use testify and fake process runners, so no JDK is needed
//   - Property tests (gopter) run with -tags property
//   - End-to-end tests against a real JDK run with -tags integration
package internal
