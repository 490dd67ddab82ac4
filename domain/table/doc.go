// Package table holds the client-side model of a poker table as pushed by the
// server, together with the pure helpers every consumer of that model needs.
//
// # Core Types
//
// Snapshot: the authoritative, immutable state of one table (phase, seats,
// bets, pots, current actor, the viewer's own seat). A new snapshot replaces
// the previous one wholesale; there are no partial updates.
//
// Seat: one fixed slot of the table, occupied or empty, indexed 0..MaxSeats-1.
//
// SeatView: the mapping between absolute seat numbers and the order in which
// seats are drawn on screen, optionally rotated so the viewer always sits at
// the same anchor position.
//
// # Pots
//
// CurrentPot sums the pot currently being contested with every bet that is
// still in front of an in-round seat. Settled pots are never recomputed on the
// client: the server is the only authority for side-pot construction.
//
// # Validation
//
// Snapshots come from the network and are treated as untrusted but well
// formed. Validate checks the structural invariants the rest of the client
// relies on and reports violations wrapping ErrInvalidSnapshot.
package table
