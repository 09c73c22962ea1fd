// Package sonnyjim is a JSON parser tuned for large, highly repetitive
// documents: the canonical target is a Kubernetes OpenAPI schema, a few
// megabytes of text with tens of thousands of repeated object keys.
//
// The parsed document lives in an [Arena]: object/array children are
// stored as index ranges into two flat side-tables rather than as
// per-node heap slices, and every object key is interned once into a
// [StringKey] handle. Numbers and non-key strings are kept as byte spans
// into the source rather than decoded, since this package never needs
// their typed value.
//
// [Parse] runs a parse to completion. [Parser.Resume] runs a bounded
// number of tokens and returns to the caller, and [Task] drives it in
// such chunks, yielding to the Go scheduler between them, so that
// adversarial or merely enormous inputs cannot monopolize a goroutine.
package sonnyjim
