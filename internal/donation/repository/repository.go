// Package repository provides data access layer for the donation module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	donationModel "github.com/cavalryfc/registration-api/internal/donation/model"
)

// Repository defines the interface for donation data access operations.
type Repository interface {
	// Create inserts a new donation record.
	Create(ctx context.Context, donation *donationModel.Donation) error

	// GetByID finds a donation by id.
	GetByID(ctx context.Context, id uint) (*donationModel.Donation, error)

	// SetSessionID stores the checkout session identifier on a record.
	SetSessionID(ctx context.Context, id uint, sessionID string) error

	// MarkPaid transitions a record to paid via a conditional update, same
	// idempotency contract as the registration store.
	MarkPaid(ctx context.Context, id uint, paymentIntentID string, paidAt time.Time) (bool, error)

	// List returns all donations newest-first.
	List(ctx context.Context) ([]donationModel.Donation, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new donation repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new donation record.
func (r *repository) Create(ctx context.Context, donation *donationModel.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

// GetByID finds a donation by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*donationModel.Donation, error) {
	var donation donationModel.Donation

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donationModel.ErrDonationNotFound
		}
		return nil, err
	}

	return &donation, nil
}

// SetSessionID stores the checkout session identifier on a record.
func (r *repository) SetSessionID(ctx context.Context, id uint, sessionID string) error {
	result := r.db.WithContext(ctx).
		Model(&donationModel.Donation{}).
		Where("id = ?", id).
		Update("stripe_checkout_session_id", sessionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return donationModel.ErrDonationNotFound
	}
	return nil
}

// MarkPaid transitions a record to paid. Re-delivery finds zero affected
// rows and is reported as a no-op; paid_at is stamped exactly once.
func (r *repository) MarkPaid(ctx context.Context, id uint, paymentIntentID string, paidAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&donationModel.Donation{}).
		Where("id = ? AND payment_status <> ?", id, donationModel.PaymentStatusPaid).
		Updates(map[string]interface{}{
			"payment_status":           donationModel.PaymentStatusPaid,
			"stripe_payment_intent_id": paymentIntentID,
			"paid_at":                  paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

// List returns all donations newest-first.
func (r *repository) List(ctx context.Context) ([]donationModel.Donation, error) {
	var donations []donationModel.Donation

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}

	if donations == nil {
		donations = []donationModel.Donation{}
	}

	return donations, nil
}
