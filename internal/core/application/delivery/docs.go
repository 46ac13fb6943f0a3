// Package delivery decides what happens to a consumed message after its
// handler ran. The broker-specific adapter turns the Outcome into an ack, a
// retry hop or a dead-letter; nothing here talks to the broker.
package delivery
