package paymob

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

// ErrSignatureMismatch is returned when the HMAC computed over the payload
// does not match the signature the gateway sent.
var ErrSignatureMismatch = errors.New("gateway signature mismatch")

// HMACVerifier authenticates Paymob webhook payloads.
//
// Paymob signs each transaction callback with HMAC-SHA512 over a fixed,
// lexicographically ordered concatenation of payload fields and sends the
// lowercase hex digest as a query parameter. The field list and order are
// fixed by the gateway and must not change.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier using the merchant's HMAC secret from
// the Paymob dashboard.
func NewHMACVerifier(secret string) HMACVerifier {
	return HMACVerifier{secret: []byte(secret)}
}

// Verify checks the gateway signature over the raw callback payload.
// Returns ErrSignatureMismatch when the digest does not match.
func (v HMACVerifier) Verify(payload []byte, signature string) error {
	callback, err := ParseCallback(payload)
	if err != nil {
		return err
	}

	mac := hmac.New(sha512.New, v.secret)
	mac.Write([]byte(concatenateSignedFields(callback.Obj)))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return ErrSignatureMismatch
	}

	return nil
}

// concatenateSignedFields joins the transaction fields in the exact order
// Paymob's HMAC scheme prescribes.
func concatenateSignedFields(txn Transaction) string {
	fields := []string{
		txn.AmountCents.String(),
		txn.CreatedAt,
		txn.Currency,
		strconv.FormatBool(txn.ErrorOccured),
		strconv.FormatBool(txn.HasParentTransaction),
		txn.ID.String(),
		txn.IntegrationID.String(),
		strconv.FormatBool(txn.Is3DSecure),
		strconv.FormatBool(txn.IsAuth),
		strconv.FormatBool(txn.IsCapture),
		strconv.FormatBool(txn.IsRefunded),
		strconv.FormatBool(txn.IsStandalonePayment),
		strconv.FormatBool(txn.IsVoided),
		txn.Order.ID.String(),
		txn.Owner.String(),
		strconv.FormatBool(txn.Pending),
		txn.SourceData.Pan,
		txn.SourceData.SubType,
		txn.SourceData.Type,
		strconv.FormatBool(txn.Success),
	}

	return strings.Join(fields, "")
}
