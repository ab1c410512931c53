// Package ipc owns the typed message channel shared with the fuzzer.
//
// Ownership boundary:
// - Channel contract (typed blocking receive, non-blocking batched send)
// - SysV message queue transport keyed by a well-known key
// - in-memory transport with the same typed semantics
// - startup retry/backoff primitives
package ipc
