// Package services provides domain services that coordinate the order aggregate with
// the roles that need to hear about it.
//
// The package includes:
//   - OrderDispatcher: applies lifecycle operations and plans notifications and activity
//   - DeliveryFeeCalculator: prices delivery by neighborhood
package services
