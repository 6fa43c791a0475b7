// Package driver contains the Driver aggregate of the laundry marketplace.
//
// A Driver picks up laundry from customers and returns it after cleaning.
// The aggregate covers two lifecycles: the approval lifecycle of a newly
// registered driver (PendingApproval to Available, Rejected or Revoked) and
// the working lifecycle around order assignments (Available, OnRoute, Busy,
// Offline). Only Available drivers can be assigned to an order or apply for
// one; delivering an order releases the driver back to Available.
package driver
