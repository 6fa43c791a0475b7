package payment

import "fmt"

// Method represents how a customer pays for an order.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// MethodCash is cash on delivery, settled by the driver at pickup.
	MethodCash

	// MethodCard is an online card payment via the external gateway.
	MethodCard

	// MethodWallet draws from the customer's prepaid wallet balance.
	MethodWallet
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "Unknown",
		MethodCash:    "Cash",
		MethodCard:    "Card",
		MethodWallet:  "Wallet",
	}
}

// Validate checks if the Method value is a known payment method.
func (m Method) Validate() error {
	if m != MethodCash && m != MethodCard && m != MethodWallet {
		return fmt.Errorf("%d is not a valid payment method", m)
	}
	return nil
}

// String returns the human-readable name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
