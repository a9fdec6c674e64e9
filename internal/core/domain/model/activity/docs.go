// Package activity models the append-only audit trail the owner reads.
package activity
