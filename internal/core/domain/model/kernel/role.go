package kernel

import (
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
)

// Role tags which of the four views is acting: the customer placing orders,
// the driver carrying them, the dispatch manager working the restaurant side,
// and the owner who observes everything.
type Role int

const (
	// UnknownRole is the zero value and never valid.
	UnknownRole Role = iota
	Customer
	Driver
	Manager
	Owner
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Customer: "CUSTOMER",
		Driver:   "DRIVER",
		Manager:  "MANAGER",
		Owner:    "OWNER",
	}
}

// Roles lists every valid role in display order.
func Roles() []Role {
	return []Role{Customer, Driver, Manager, Owner}
}

// RoleFromString parses "CUSTOMER", "DRIVER", "MANAGER" or "OWNER" (case-insensitive).
func RoleFromString(s string) (Role, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if name == needle {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// ObservesAll reports whether the role sees every notification regardless of its target.
func (r Role) ObservesAll() bool {
	return r == Owner
}

// Receives reports whether a notification addressed to target should be shown to r.
func (r Role) Receives(target Role) bool {
	return r == target || r.ObservesAll()
}
