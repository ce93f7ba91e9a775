// Package diag defines the diagnostic model shared by the lexer, the parser and
// the breakpoint resolver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: tri-level enum (Info, Warning, Error) defined in severity.go, with ParseSeverity for config values.
//   - Code: compact numeric identifier (see codes.go) with stable string form.
//   - Message: human oriented text; keep it short and actionable.
//   - Primary span: the canonical source.Span pointing to the issue.
//   - Notes: optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Phases report through a diag.Reporter so emission stays decoupled from
// storage. BagReporter aggregates diagnostics into a Bag, which supports
// sorting, deduplication and merging. Rendering lives in internal/diagfmt.
package diag
