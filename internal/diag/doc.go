// Package diag defines the diagnostic model shared by the import pipeline
// phases.
//
//   - Deterministic, serialisable structures capturing findings from the
//     import scanner and resolver.
//   - Light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
package diag
