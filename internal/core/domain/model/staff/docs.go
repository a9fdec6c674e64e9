// Package staff models the accounts the owner manages from the admin view.
package staff
