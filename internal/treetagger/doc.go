// Package treetagger drives the external TreeTagger executable.
//
// The adapter resolves the per-language binary once at construction, then
// performs one blocking subprocess round-trip per call: input tokens go to
// the child's stdin newline-joined in the model's charset, and the child's
// tab-delimited stdout comes back as ordered records. There is no session,
// no retry, and no shared mutable state after construction, so a single
// adapter is safe for concurrent use.
package treetagger
