// Package seedstore owns the shared seed state touched by both coordinator loops.
//
// Ownership boundary:
// - FuzzerSeedCache: deduplicated seeds supplied by the fuzzer, reset on overflow
// - LocalSeedPool: rolling mutation sources, restarted on overflow
// - OutboundQueue: FIFO of generated seeds awaiting transmission
// - SeedIDMap: seed text -> most recent correlation id
//
// Each structure guards its own compound operations with its own mutex; no
// atomicity is provided across structures.
package seedstore
