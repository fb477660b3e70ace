// Package types holds the wire shapes shared by every storefront endpoint.
package types

// SuccessEnvelope wraps every 2xx JSON body, from product listings to the
// submission receipt.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error shape. Details carries structured
// extras such as field validation messages or the wizard redirect step.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
