package partner

import (
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
)

// Kind is the storefront type shown on the customer's home screen.
type Kind int

const (
	UnknownKind Kind = iota
	Restaurant
	Market
	Takeaway
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Restaurant: "RESTAURANT",
		Market:     "MARKET",
		Takeaway:   "TAKEAWAY",
	}
}

func KindFromString(s string) (Kind, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for kind, name := range getKindStrings() {
		if name == needle {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid partner kind", s))
}

func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid partner kind", int(k)))
	}
	return nil
}

func (k Kind) String() string {
	if name, ok := getKindStrings()[k]; ok {
		return name
	}
	return "UNKNOWN"
}
