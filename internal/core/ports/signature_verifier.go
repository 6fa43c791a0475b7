package ports

// SignatureVerifier authenticates a payment gateway webhook payload.
// Verification runs before any processing of the callback; an unverified
// payload must be discarded without touching payment state.
type SignatureVerifier interface {
	// Verify checks the gateway signature over the raw callback payload.
	// Returns an error when the signature does not match.
	Verify(payload []byte, signature string) error
}
