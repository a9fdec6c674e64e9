// Package notification holds the append-only messages that roles send each other
// as an order moves through its lifecycle.
package notification
