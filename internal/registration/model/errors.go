package model

import "errors"

var (
	// ErrRegistrationNotFound indicates that the requested registration does not exist.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrConsentRequired indicates a checkout attempt without all
	// payment-blocking consents (waiver, age verification, photo release).
	ErrConsentRequired = errors.New("waiver, age verification and photo release consents are required")
	// ErrTeamFull indicates the team's paid count has reached capacity;
	// the client should route the submission to the waitlist path.
	ErrTeamFull = errors.New("team is full")
	// ErrTeamClosed indicates a checkout attempt against a closed team.
	ErrTeamClosed = errors.New("team is not open for registration")
	// ErrInvalidStatusFilter indicates an unrecognized admin list filter.
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	// ErrUpstreamFailure indicates the payment provider was unreachable or
	// rejected the request. The pending record is preserved.
	ErrUpstreamFailure = errors.New("payment provider request failed")
)
