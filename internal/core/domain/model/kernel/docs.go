// Package kernel provides the primitives shared by every aggregate of the
// delivery core.
//
// The package includes:
//   - UUID: identifier value object backed by github.com/google/uuid
//   - Role: the CUSTOMER / DRIVER / MANAGER / OWNER tag used for notification
//     targeting, activity actors and view selection
//   - Clock: time source injected into handlers so tests can pin timestamps
package kernel
