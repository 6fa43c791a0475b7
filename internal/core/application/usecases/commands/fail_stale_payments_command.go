package commands

// FailStalePaymentsCommand triggers a sweep over pending payments the
// gateway never settled. The command carries no data; the handler is
// configured with the pending time-to-live.
type FailStalePaymentsCommand struct{}

// NewFailStalePaymentsCommand creates the sweep trigger command.
func NewFailStalePaymentsCommand() FailStalePaymentsCommand {
	return FailStalePaymentsCommand{}
}

// Validate always succeeds: the command has no parameters.
func (c FailStalePaymentsCommand) Validate() error {
	return nil
}
