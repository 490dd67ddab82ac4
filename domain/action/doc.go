// Package action decides what the local seat may do with a table snapshot.
//
// Evaluate is a pure function from a table.Snapshot to an Evaluation: one of
// five action states plus the bounds and labels the controls need. Controller
// keeps the two auto-action preferences of a table view and resolves them
// against each new snapshot, producing at most one Decision. Dispatcher turns
// a Decision into the Request value handed to the transport.
//
// Nothing in this package blocks or performs I/O, and nothing mutates a
// snapshot: evaluating the same snapshot twice gives the same result.
package action
