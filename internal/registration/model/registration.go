// Package model provides domain models and DTOs for the registration module.
package model

import "time"

// Payment status values. A record only ever moves forward:
// unpaid -> paid; abandonment stays unpaid; refunded is reserved.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusCanceled = "canceled"
)

// Registration represents a player registration record.
// Matches the registrations table schema. The team reference is nullable so
// records survive a team being removed from the registry.
type Registration struct {
	ID     uint  `gorm:"primaryKey;column:id" json:"id"`
	TeamID *uint `gorm:"column:team_id" json:"teamId"`

	PlayerFirstName string `gorm:"column:player_first_name;not null" json:"playerFirstName"`
	PlayerLastName  string `gorm:"column:player_last_name;not null" json:"playerLastName"`
	DateOfBirth     string `gorm:"column:date_of_birth;not null" json:"dateOfBirth"`
	SchoolGrade     string `gorm:"column:school_grade" json:"schoolGrade"`
	PrimaryPosition string `gorm:"column:primary_position" json:"primaryPosition"`
	ExperienceLevel string `gorm:"column:experience_level" json:"experienceLevel"`
	MedicalNotes    string `gorm:"column:medical_notes" json:"medicalNotes"`

	JerseySize string `gorm:"column:jersey_size" json:"jerseySize"`
	ShortSize  string `gorm:"column:short_size" json:"shortSize"`

	Guardian1FirstName string `gorm:"column:guardian_1_first_name;not null" json:"guardian1FirstName"`
	Guardian1LastName  string `gorm:"column:guardian_1_last_name;not null" json:"guardian1LastName"`
	Guardian1Email     string `gorm:"column:guardian_1_email;not null" json:"guardian1Email"`
	Guardian1Phone     string `gorm:"column:guardian_1_phone;not null" json:"guardian1Phone"`
	Guardian1Volunteer string `gorm:"column:guardian_1_volunteer;default:No" json:"guardian1Volunteer"`

	Guardian2FirstName string `gorm:"column:guardian_2_first_name" json:"guardian2FirstName"`
	Guardian2LastName  string `gorm:"column:guardian_2_last_name" json:"guardian2LastName"`
	Guardian2Email     string `gorm:"column:guardian_2_email" json:"guardian2Email"`
	Guardian2Phone     string `gorm:"column:guardian_2_phone" json:"guardian2Phone"`
	Guardian2Volunteer string `gorm:"column:guardian_2_volunteer;default:No" json:"guardian2Volunteer"`

	EmergencyContactFirstName string `gorm:"column:emergency_contact_first_name" json:"emergencyContactFirstName"`
	EmergencyContactLastName  string `gorm:"column:emergency_contact_last_name" json:"emergencyContactLastName"`
	EmergencyContactEmail     string `gorm:"column:emergency_contact_email" json:"emergencyContactEmail"`
	EmergencyContactPhone     string `gorm:"column:emergency_contact_phone" json:"emergencyContactPhone"`
	EmergencyContactRelation  string `gorm:"column:emergency_contact_relation" json:"emergencyContactRelation"`

	ScheduleRequests string `gorm:"column:schedule_requests" json:"scheduleRequests"`

	Street1 string `gorm:"column:street_1;not null" json:"street1"`
	Street2 string `gorm:"column:street_2" json:"street2"`
	City    string `gorm:"column:city;not null" json:"city"`
	State   string `gorm:"column:state;not null" json:"state"`
	Zip     string `gorm:"column:zip;not null" json:"zip"`

	WaiverAccepted          bool `gorm:"column:waiver_accepted;not null" json:"waiverAccepted"`
	PhotoReleaseAccepted    bool `gorm:"column:photo_release_accepted;not null" json:"photoReleaseAccepted"`
	AgeVerificationAccepted bool `gorm:"column:age_verification_accepted;not null" json:"ageVerificationAccepted"`
	CodeOfConductAccepted   bool `gorm:"column:code_of_conduct_accepted;not null" json:"codeOfConductAccepted"`

	// AmountCents is copied from the team's price at submission time and is
	// never recomputed, even if the team's price changes later.
	AmountCents             int        `gorm:"column:amount_cents" json:"amountCents"`
	Currency                string     `gorm:"column:currency;default:usd" json:"currency"`
	StripeCheckoutSessionID string     `gorm:"column:stripe_checkout_session_id" json:"stripeCheckoutSessionId"`
	StripePaymentIntentID   string     `gorm:"column:stripe_payment_intent_id" json:"stripePaymentIntentId"`
	PaymentStatus           string     `gorm:"column:payment_status;default:unpaid" json:"paymentStatus"`
	IsWaitlist              bool       `gorm:"column:is_waitlist;not null;default:false" json:"isWaitlist"`
	PaidAt                  *time.Time `gorm:"column:paid_at" json:"paidAt"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Registration) TableName() string {
	return "registrations"
}
