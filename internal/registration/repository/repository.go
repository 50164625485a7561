// Package repository provides data access layer for the registration module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	regModel "github.com/cavalryfc/registration-api/internal/registration/model"
)

// Repository defines the interface for registration data access operations.
type Repository interface {
	// Create inserts a new registration record.
	Create(ctx context.Context, reg *regModel.Registration) error

	// GetByID finds a registration by id.
	GetByID(ctx context.Context, id uint) (*regModel.Registration, error)

	// CountPaid returns the number of paid, non-waitlist registrations for a team.
	CountPaid(ctx context.Context, teamID uint) (int, error)

	// SetSessionID stores the checkout session identifier on a record.
	SetSessionID(ctx context.Context, id uint, sessionID string) error

	// MarkPaid transitions a record to paid. The update is conditional: it
	// only applies when the record is not already paid and is not
	// waitlisted, which makes concurrent verify/webhook delivery safe
	// without a lock. Returns true when the transition was applied, false
	// when it was a no-op (already paid or waitlisted).
	MarkPaid(ctx context.Context, id uint, paymentIntentID string, paidAt time.Time) (bool, error)

	// List returns registrations newest-first, optionally filtered by
	// status (paid, unpaid, waitlist).
	List(ctx context.Context, statusFilter string) ([]regModel.Registration, error)

	// Delete removes a registration record.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new registration repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new registration record.
func (r *repository) Create(ctx context.Context, reg *regModel.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

// GetByID finds a registration by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*regModel.Registration, error) {
	var reg regModel.Registration

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, regModel.ErrRegistrationNotFound
		}
		return nil, err
	}

	return &reg, nil
}

// CountPaid returns the number of paid, non-waitlist registrations for a team.
func (r *repository) CountPaid(ctx context.Context, teamID uint) (int, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&regModel.Registration{}).
		Where("team_id = ? AND payment_status = ? AND is_waitlist = ?",
			teamID, regModel.PaymentStatusPaid, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// SetSessionID stores the checkout session identifier on a record.
func (r *repository) SetSessionID(ctx context.Context, id uint, sessionID string) error {
	result := r.db.WithContext(ctx).
		Model(&regModel.Registration{}).
		Where("id = ?", id).
		Update("stripe_checkout_session_id", sessionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return regModel.ErrRegistrationNotFound
	}
	return nil
}

// MarkPaid transitions a record to paid via a conditional update. The
// is_waitlist guard enforces the invariant that a waitlisted record never
// becomes paid; the payment_status guard makes re-delivery a no-op so
// paid_at is stamped exactly once.
func (r *repository) MarkPaid(ctx context.Context, id uint, paymentIntentID string, paidAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&regModel.Registration{}).
		Where("id = ? AND payment_status <> ? AND is_waitlist = ?",
			id, regModel.PaymentStatusPaid, false).
		Updates(map[string]interface{}{
			"payment_status":           regModel.PaymentStatusPaid,
			"stripe_payment_intent_id": paymentIntentID,
			"paid_at":                  paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish an idempotent no-op from an unknown record.
		if _, err := r.GetByID(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

// List returns registrations newest-first, optionally filtered by status.
func (r *repository) List(ctx context.Context, statusFilter string) ([]regModel.Registration, error) {
	query := r.db.WithContext(ctx).Model(&regModel.Registration{})

	switch statusFilter {
	case "":
		// no filter
	case regModel.FilterPaid:
		query = query.Where("payment_status = ? AND is_waitlist = ?", regModel.PaymentStatusPaid, false)
	case regModel.FilterUnpaid:
		query = query.Where("payment_status = ? AND is_waitlist = ?", regModel.PaymentStatusUnpaid, false)
	case regModel.FilterWaitlist:
		query = query.Where("is_waitlist = ?", true)
	default:
		return nil, regModel.ErrInvalidStatusFilter
	}

	var regs []regModel.Registration
	err := query.Order("created_at DESC, id DESC").Find(&regs).Error
	if err != nil {
		return nil, err
	}

	if regs == nil {
		regs = []regModel.Registration{}
	}

	return regs, nil
}

// Delete removes a registration record.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&regModel.Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return regModel.ErrRegistrationNotFound
	}
	return nil
}
