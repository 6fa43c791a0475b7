// Package order contains the Order aggregate of the laundry marketplace.
//
// An Order is a pickup-and-delivery request placed by a customer: a set of
// catalog services (line items with prices snapshotted at order time), a
// pickup time slot on a scheduled date, pickup and delivery locations, and a
// payment method. The aggregate owns the order lifecycle state machine —
// Requested through Delivered, with Cancelled and PaymentFailed as alternate
// terminal outcomes — and enforces that every transition follows the
// lifecycle graph.
//
// The package exposes:
//   - Order: the aggregate root, created via NewOrder or rehydrated via
//     RestoreOrder
//   - Item: an immutable order line item value object
//   - Status: the lifecycle state machine with its transition rules
package order
