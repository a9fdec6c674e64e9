// Package errs provides the error types shared by the domain, application and adapter layers.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: an entity cannot be found by its identifier
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap
//   - a struct carrying the error details
//   - constructors with and without a cause
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// the HTTP adapter independent of the concrete error structs.
package errs
