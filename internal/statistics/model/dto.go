// Package model provides data transfer objects for statistics module.
package model

// TeamStatistics represents registration rollups for one team.
type TeamStatistics struct {
	TeamID           uint   `json:"teamId"`
	TeamName         string `json:"teamName"`
	Capacity         int    `json:"capacity"`
	PaidCount        int    `json:"paidCount"`
	PendingCount     int    `json:"pendingCount"`
	WaitlistCount    int    `json:"waitlistCount"`
	SpotsLeft        int    `json:"spotsLeft"`
	PaidRevenueCents int64  `json:"paidRevenueCents"`
}

// RegistrationStatistics represents totals across all registrations.
type RegistrationStatistics struct {
	Total            int   `json:"total"`
	Paid             int   `json:"paid"`
	Pending          int   `json:"pending"`
	Waitlisted       int   `json:"waitlisted"`
	PaidRevenueCents int64 `json:"paidRevenueCents"`
}

// DonationStatistics represents totals across donations and reimbursements.
type DonationStatistics struct {
	Count                    int   `json:"count"`
	PaidCount                int   `json:"paidCount"`
	PaidAmountCents          int64 `json:"paidAmountCents"`
	ReimbursementCount       int   `json:"reimbursementCount"`
	ReimbursementAmountCents int64 `json:"reimbursementAmountCents"`
}

// StatisticsResponse represents the admin dashboard response.
type StatisticsResponse struct {
	Teams         []TeamStatistics       `json:"teams"`
	Registrations RegistrationStatistics `json:"registrations"`
	Donations     DonationStatistics     `json:"donations"`
}
