// Package coordinator ties the fuzzer channel to the mutation oracle.
//
// Ownership boundary:
// - service lifecycle (open channel, start/stop both loops, admin endpoint)
// - receive/flush loop: REQUEST seeds in, queued SEED messages out
// - generation loop: select source seed, prompt oracle, canonicalize, enqueue
//
// Shared state lives in seedstore and corrid; the loops never share anything
// else.
package coordinator
