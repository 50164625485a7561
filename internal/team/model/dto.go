package model

// TeamWithCount is a team annotated with its live paid-registration count.
// Only paid, non-waitlist registrations count against capacity.
type TeamWithCount struct {
	Team
	RegistrationCount int `json:"registrationCount"`
	SpotsLeft         int `json:"spotsLeft"`
}

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	PriceCents  *int   `json:"priceCents"`
	Capacity    *int   `json:"capacity"`
	Description string `json:"description"`
	Open        *bool  `json:"open"`
}

// UpdateTeamRequest represents a partial update of a team's mutable fields.
// Nil fields are left unchanged.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	PriceCents  *int    `json:"priceCents"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
	Open        *bool   `json:"open"`
}
