// Package diag defines the diagnostic model shared by the doc pipeline.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced while scanning Lua sources and classifying doc comments.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g. “block
// starts here”) rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Producers should use a diag.Reporter to decouple emission from storage. For
// convenience, diag.BagReporter aggregates diagnostics into a Bag, which
// supports sorting, deduplication and merging across files.
//
// Keep the data model deterministic: any new fields should avoid side effects,
// so the CLI and future tooling can safely serialise diagnostics for caching
// and testing.
package diag
