package model

// IntakeRequest is the full registration form payload. The same payload
// feeds both the checkout path and the waitlist path.
type IntakeRequest struct {
	TeamID uint `json:"teamId" binding:"required"`

	PlayerFirstName string `json:"playerFirstName" binding:"required"`
	PlayerLastName  string `json:"playerLastName" binding:"required"`
	DateOfBirth     string `json:"dateOfBirth" binding:"required"`
	SchoolGrade     string `json:"schoolGrade"`
	PrimaryPosition string `json:"primaryPosition"`
	ExperienceLevel string `json:"experienceLevel"`
	MedicalNotes    string `json:"medicalNotes"`

	JerseySize string `json:"jerseySize"`
	ShortSize  string `json:"shortSize"`

	Guardian1FirstName string `json:"guardian1FirstName" binding:"required"`
	Guardian1LastName  string `json:"guardian1LastName" binding:"required"`
	Guardian1Email     string `json:"guardian1Email" binding:"required,email"`
	Guardian1Phone     string `json:"guardian1Phone" binding:"required"`
	Guardian1Volunteer string `json:"guardian1Volunteer"`

	Guardian2FirstName string `json:"guardian2FirstName"`
	Guardian2LastName  string `json:"guardian2LastName"`
	Guardian2Email     string `json:"guardian2Email"`
	Guardian2Phone     string `json:"guardian2Phone"`
	Guardian2Volunteer string `json:"guardian2Volunteer"`

	EmergencyContactFirstName string `json:"emergencyContactFirstName"`
	EmergencyContactLastName  string `json:"emergencyContactLastName"`
	EmergencyContactEmail     string `json:"emergencyContactEmail"`
	EmergencyContactPhone     string `json:"emergencyContactPhone"`
	EmergencyContactRelation  string `json:"emergencyContactRelation"`

	ScheduleRequests string `json:"scheduleRequests"`

	Street1 string `json:"street1" binding:"required"`
	Street2 string `json:"street2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Zip     string `json:"zip" binding:"required"`

	WaiverAccepted          bool `json:"waiverAccepted"`
	PhotoReleaseAccepted    bool `json:"photoReleaseAccepted"`
	AgeVerificationAccepted bool `json:"ageVerificationAccepted"`
	CodeOfConductAccepted   bool `json:"codeOfConductAccepted"`
}

// ToRegistration builds an unpaid Registration record from the intake
// payload. The amount is set by the caller from the team's current price,
// never from the client.
func (r *IntakeRequest) ToRegistration() *Registration {
	teamID := r.TeamID
	volunteer1 := r.Guardian1Volunteer
	if volunteer1 == "" {
		volunteer1 = "No"
	}
	volunteer2 := r.Guardian2Volunteer
	if volunteer2 == "" {
		volunteer2 = "No"
	}

	return &Registration{
		TeamID: &teamID,

		PlayerFirstName: r.PlayerFirstName,
		PlayerLastName:  r.PlayerLastName,
		DateOfBirth:     r.DateOfBirth,
		SchoolGrade:     r.SchoolGrade,
		PrimaryPosition: r.PrimaryPosition,
		ExperienceLevel: r.ExperienceLevel,
		MedicalNotes:    r.MedicalNotes,

		JerseySize: r.JerseySize,
		ShortSize:  r.ShortSize,

		Guardian1FirstName: r.Guardian1FirstName,
		Guardian1LastName:  r.Guardian1LastName,
		Guardian1Email:     r.Guardian1Email,
		Guardian1Phone:     r.Guardian1Phone,
		Guardian1Volunteer: volunteer1,

		Guardian2FirstName: r.Guardian2FirstName,
		Guardian2LastName:  r.Guardian2LastName,
		Guardian2Email:     r.Guardian2Email,
		Guardian2Phone:     r.Guardian2Phone,
		Guardian2Volunteer: volunteer2,

		EmergencyContactFirstName: r.EmergencyContactFirstName,
		EmergencyContactLastName:  r.EmergencyContactLastName,
		EmergencyContactEmail:     r.EmergencyContactEmail,
		EmergencyContactPhone:     r.EmergencyContactPhone,
		EmergencyContactRelation:  r.EmergencyContactRelation,

		ScheduleRequests: r.ScheduleRequests,

		Street1: r.Street1,
		Street2: r.Street2,
		City:    r.City,
		State:   r.State,
		Zip:     r.Zip,

		WaiverAccepted:          r.WaiverAccepted,
		PhotoReleaseAccepted:    r.PhotoReleaseAccepted,
		AgeVerificationAccepted: r.AgeVerificationAccepted,
		CodeOfConductAccepted:   r.CodeOfConductAccepted,

		Currency:      "usd",
		PaymentStatus: PaymentStatusUnpaid,
	}
}

// CheckoutResponse carries the hosted checkout redirect URL.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// VerifyRequest carries the checkout session identifier returned by the
// provider redirect.
type VerifyRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// VerifyResult is the outcome of a verify call. Registration is set only
// when the session resolved to a paid record.
type VerifyResult struct {
	Status       string             `json:"status"`
	Registration *AdminRegistration `json:"registration,omitempty"`
}

// WaitlistResponse is returned by the waitlist path.
type WaitlistResponse struct {
	Status       string        `json:"status"`
	Registration *Registration `json:"registration"`
}

// AdminRegistration is a registration enriched with the joined team name for
// the admin list, export and verify receipt.
type AdminRegistration struct {
	Registration
	TeamName      string `json:"teamName"`
	Guardian1Name string `json:"guardian1Name"`
}

// Admin list status filters.
const (
	FilterPaid     = "paid"
	FilterUnpaid   = "unpaid"
	FilterWaitlist = "waitlist"
)
