// Package ports defines the contracts between the application core and its adapters:
// repositories for the order ledger, the notification and activity logs and the
// partner and staff catalogues, all bound to a unit of work.
package ports
