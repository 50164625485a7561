package model

import "errors"

var (
	// ErrDonationNotFound indicates that the requested donation does not exist.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrAmountBelowMinimum indicates an amount under the $1.00 minimum.
	ErrAmountBelowMinimum = errors.New("minimum amount is $1.00")
	// ErrUpstreamFailure indicates the payment provider was unreachable or
	// rejected the request. The pending record is preserved.
	ErrUpstreamFailure = errors.New("payment provider request failed")
)
