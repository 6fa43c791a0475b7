// Package paymob integrates with the Paymob payment gateway: parsing its
// transaction webhook payload and authenticating it with the gateway's
// HMAC scheme.
package paymob

import (
	"encoding/json"
	"fmt"
)

// Callback is the envelope Paymob posts to the webhook endpoint. Only
// TRANSACTION callbacks carry a settlement; other types are ignored upstream.
type Callback struct {
	Type string      `json:"type"`
	Obj  Transaction `json:"obj"`
}

// Transaction is the subset of Paymob's transaction object the service reads.
// Numeric fields use json.Number so the HMAC string reproduces the exact
// literal the gateway signed.
type Transaction struct {
	AmountCents          json.Number `json:"amount_cents"`
	CreatedAt            string      `json:"created_at"`
	Currency             string      `json:"currency"`
	ErrorOccured         bool        `json:"error_occured"`
	HasParentTransaction bool        `json:"has_parent_transaction"`
	ID                   json.Number `json:"id"`
	IntegrationID        json.Number `json:"integration_id"`
	Is3DSecure           bool        `json:"is_3d_secure"`
	IsAuth               bool        `json:"is_auth"`
	IsCapture            bool        `json:"is_capture"`
	IsRefunded           bool        `json:"is_refunded"`
	IsStandalonePayment  bool        `json:"is_standalone_payment"`
	IsVoided             bool        `json:"is_voided"`
	Order                OrderRef    `json:"order"`
	Owner                json.Number `json:"owner"`
	Pending              bool        `json:"pending"`
	SourceData           SourceData  `json:"source_data"`
	Success              bool        `json:"success"`
}

// OrderRef is the gateway-side order attached to a transaction.
// MerchantOrderID is the reference the merchant supplied at payment
// initiation and is echoed back verbatim.
type OrderRef struct {
	ID              json.Number `json:"id"`
	MerchantOrderID string      `json:"merchant_order_id"`
}

// SourceData describes the payment instrument used.
type SourceData struct {
	Pan     string `json:"pan"`
	SubType string `json:"sub_type"`
	Type    string `json:"type"`
}

// ParseCallback decodes a raw webhook payload.
func ParseCallback(payload []byte) (Callback, error) {
	var callback Callback
	if err := json.Unmarshal(payload, &callback); err != nil {
		return Callback{}, fmt.Errorf("failed to parse gateway callback: %w", err)
	}
	return callback, nil
}
