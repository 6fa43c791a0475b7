// Package events defines the domain events of the order lifecycle and the
// DomainEvent contract they share. Command handlers collect events during a
// transaction and hand them to an EventPublisher after the commit; a publish
// failure is logged and never fails the command that produced the event.
package events
