package model

// CheckoutRequest is the donation/reimbursement checkout payload. All donor
// fields are optional; only the amount is required.
type CheckoutRequest struct {
	AmountCents int    `json:"amountCents" binding:"required"`
	DonorName   string `json:"donorName"`
	DonorEmail  string `json:"donorEmail"`
	Comment     string `json:"comment"`
	Type        string `json:"type"`
}

// CheckoutResponse carries the hosted checkout redirect URL.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// VerifyRequest carries the checkout session identifier.
type VerifyRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// VerifyResult is the outcome of a verify call. Donation is set only when
// the session resolved to a paid record.
type VerifyResult struct {
	Status   string    `json:"status"`
	Donation *Donation `json:"donation,omitempty"`
}
