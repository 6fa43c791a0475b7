// Package timeslot contains the TimeSlot entity: a bookable pickup window
// with a hard per-date capacity limit. The slot owns the capacity judgement
// (CheckCapacity); the count of active orders booked into it is supplied by
// the order store under a row lock, which is what keeps concurrent bookings
// from exceeding the limit.
package timeslot
