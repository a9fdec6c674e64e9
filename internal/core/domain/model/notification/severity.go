package notification

import (
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
)

// Severity drives how a notification is rendered in the toast.
type Severity int

const (
	UnknownSeverity Severity = iota
	Info
	Success
	Warning
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		Info:    "INFO",
		Success: "SUCCESS",
		Warning: "WARNING",
	}
}

func SeverityFromString(s string) (Severity, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for severity, name := range getSeverityStrings() {
		if name == needle {
			return severity, nil
		}
	}
	return UnknownSeverity, errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%q is not a valid severity", s))
}

func (s Severity) Validate() error {
	if _, ok := getSeverityStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%d is not a valid severity", int(s)))
	}
	return nil
}

func (s Severity) String() string {
	if name, ok := getSeverityStrings()[s]; ok {
		return name
	}
	return "UNKNOWN"
}
