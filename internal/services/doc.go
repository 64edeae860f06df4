// Package services defines shared utilities consumed by the run coordinator
// and the external editor integration.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that separate fatal
//     infrastructure failures (no editor, missing input directory) from
//     per-job failures the run absorbs and reports.
//   - Context helpers that stamp run and job identifiers for logging so every
//     line emitted while a job runs can be traced back to it.
//
// Use these helpers when wiring new job logic so operational behaviour (error
// handling, observability) stays uniform across the pipeline.
package services
