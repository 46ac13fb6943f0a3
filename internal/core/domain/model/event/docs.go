// Package event defines the message contracts exchanged between services.
package event
