package order

import (
	"errors"
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"
)

var ErrPrepTimeIsNotConstructed = errs.NewValueIsRequiredError("prepTime")

// PrepTime is the kitchen estimate chosen by dispatch when accepting an order.
type PrepTime struct {
	label string
	guard guard.ConstructorGuard
}

// PrepTimeOptions are the estimates dispatch can pick from.
func PrepTimeOptions() []string {
	return []string{"15 min", "20 min", "30 min"}
}

// NewPrepTime accepts one of PrepTimeOptions, ignoring surrounding whitespace.
func NewPrepTime(label string) (PrepTime, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return PrepTime{}, errs.NewValueIsRequiredError("prepTime")
	}
	for _, option := range PrepTimeOptions() {
		if option == label {
			return PrepTime{label: label, guard: guard.NewConstructorGuard()}, nil
		}
	}
	return PrepTime{}, errs.NewValueIsInvalidErrorWithCause(
		"prepTime",
		fmt.Errorf("%q is not one of %s", label, strings.Join(PrepTimeOptions(), ", ")),
	)
}

func (p PrepTime) Validate() error {
	return p.guard.Validate(ErrPrepTimeIsNotConstructed)
}

// IsZero reports whether no estimate has been chosen.
func (p PrepTime) IsZero() bool {
	return errors.Is(p.Validate(), ErrPrepTimeIsNotConstructed)
}

func (p PrepTime) String() string {
	return p.label
}
