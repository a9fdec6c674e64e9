// Package order implements the Order aggregate: the single ledger record that the
// customer, dispatch and driver views coordinate around.
//
// The package includes:
//   - Order: aggregate root holding items, total, status, driver and confirmation code
//   - Status: the state machine enforcing legal transitions
//   - Item, PaymentMethod, PrepTime: value objects captured at creation or acceptance
//   - ConfirmationCode and CodeGenerator: the 4-digit proof-of-receipt secret
//
// Key business rules:
//   - An order needs at least one item; total is computed once and never recomputed
//   - Status flows PENDING -> PREPARING -> READY_FOR_PICKUP -> OUT_FOR_DELIVERY -> DELIVERED,
//     with PENDING -> REFUSED as the only alternate branch
//   - DELIVERED is reachable only by presenting the matching confirmation code
//   - Orders are never removed; customers can only hide them from their own history
package order
