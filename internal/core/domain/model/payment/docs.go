// Package payment contains the Payment aggregate of the laundry marketplace.
//
// A Payment tracks the outcome of a charge processed by an external payment
// gateway, either for an order or for a wallet top-up. Payments start Pending
// and settle exactly once into Completed or Failed; both outcomes are
// terminal, which is what makes gateway webhook redeliveries safe to replay.
package payment
