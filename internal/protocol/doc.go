// Package protocol owns the fuzzer<->coordinator wire contract.
//
// Ownership boundary:
// - message type tags shared with the fuzzer
// - SEED payload encoding (correlation id + seed text)
// - REQUEST payload decoding (header strip + permissive text decode)
// - reserved REWARD payload layout
//
// Integers on the wire use the host byte order, matching the fuzzer's native
// struct layout on the same machine.
package protocol
