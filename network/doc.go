// Package network carries the requests produced by the table views to the
// game server.
//
// # Core Components
//
// Transport: the outbound collaborator, one method per request kind.
//
// Sender: posts each request as JSON to the server over HTTP or HTTPS,
// retrying transient failures until its timeout expires.
//
// Writer: encodes each request as one JSON line on an io.Writer. It is used
// for offline replays and as a wire log.
//
// Session: a websocket connection to the server. It reads the snapshots the
// server pushes and writes requests back, keeping the connection alive with
// pings.
//
// Neither component interprets the requests; legality is decided before a
// request is built.
package network
