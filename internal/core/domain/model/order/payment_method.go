package order

import (
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order. Payment is recorded, never processed.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	MPesa
	EMola
	Cash
	Card
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		MPesa: "MPESA",
		EMola: "EMOLA",
		Cash:  "CASH",
		Card:  "CARD",
	}
}

// PaymentMethodFromString parses "MPESA", "EMOLA", "CASH" or "CARD" (case-insensitive).
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for method, name := range getPaymentMethodStrings() {
		if name == needle {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a supported payment method", s),
	)
}

func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a supported payment method", int(p)),
		)
	}
	return nil
}

func (p PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[p]; ok {
		return s
	}
	return "UNKNOWN"
}
