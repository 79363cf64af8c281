// Package transports contains the wire transports used by the HTTP engine.
// The Transport interface isolates the engine from the concrete HTTP client
// so tests can script exchanges without a network.
package transports
