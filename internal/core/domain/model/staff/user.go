package staff

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Status is whether a staff account may act in the system.
type Status int

const (
	UnknownStatus Status = iota
	Active
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Active:   "ACTIVE",
		Inactive: "INACTIVE",
	}
}

func StatusFromString(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == needle {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid user status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid user status", int(s)))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// User is a member of staff the owner manages. New users start ACTIVE.
type User struct {
	id     kernel.UUID
	name   string
	role   kernel.Role
	status Status
	email  string

	isConstructed bool
}

func NewUser(id kernel.UUID, name string, role kernel.Role, email string) (*User, error) {
	return RestoreUser(id, name, role, Active, email)
}

// RestoreUser rebuilds a user with a known status.
func RestoreUser(id kernel.UUID, name string, role kernel.Role, status Status, email string) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
		u.setStatus(status),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() kernel.Role {
	return u.role
}

func (u *User) Status() Status {
	return u.status
}

func (u *User) Email() string {
	return u.email
}

func (u *User) IsActive() bool {
	return u.status == Active
}

// ToggleStatus flips ACTIVE and INACTIVE and returns the new status.
func (u *User) ToggleStatus() Status {
	if u.status == Active {
		u.status = Inactive
	} else {
		u.status = Active
	}
	return u.status
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}
