// Package application contains the Application aggregate: a driver's bid to
// handle a specific order. Orders can be assigned directly by an admin or
// competitively through applications — several drivers apply, one gets
// accepted, the rest are auto-rejected. A rejected driver sits out a cooldown
// before re-applying to the same order.
package application
