// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTeamStatistics returns per-team registration rollups.
	GetTeamStatistics(ctx context.Context) ([]model.TeamStatistics, error)

	// GetRegistrationStatistics returns totals across all registrations.
	GetRegistrationStatistics(ctx context.Context) (*model.RegistrationStatistics, error)

	// GetDonationStatistics returns totals across donations and reimbursements.
	GetDonationStatistics(ctx context.Context) (*model.DonationStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTeamStatistics returns per-team registration rollups.
func (r *repository) GetTeamStatistics(ctx context.Context) ([]model.TeamStatistics, error) {
	var rows []struct {
		TeamID           uint   `gorm:"column:team_id"`
		TeamName         string `gorm:"column:team_name"`
		Capacity         int64  `gorm:"column:capacity"`
		PaidCount        int64  `gorm:"column:paid_count"`
		PendingCount     int64  `gorm:"column:pending_count"`
		WaitlistCount    int64  `gorm:"column:waitlist_count"`
		PaidRevenueCents int64  `gorm:"column:paid_revenue_cents"`
	}

	err := r.db.WithContext(ctx).
		Table("teams").
		Select(`
			teams.id as team_id,
			teams.name as team_name,
			teams.capacity,
			COALESCE(SUM(CASE WHEN registrations.payment_status = 'paid' AND registrations.is_waitlist = false THEN 1 ELSE 0 END), 0) as paid_count,
			COALESCE(SUM(CASE WHEN registrations.payment_status = 'unpaid' AND registrations.is_waitlist = false THEN 1 ELSE 0 END), 0) as pending_count,
			COALESCE(SUM(CASE WHEN registrations.is_waitlist = true THEN 1 ELSE 0 END), 0) as waitlist_count,
			COALESCE(SUM(CASE WHEN registrations.payment_status = 'paid' AND registrations.is_waitlist = false THEN registrations.amount_cents ELSE 0 END), 0) as paid_revenue_cents
		`).
		Joins("LEFT JOIN registrations ON registrations.team_id = teams.id").
		Group("teams.id, teams.name, teams.capacity").
		Order("teams.name ASC").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("GetTeamStatistics database error", "error", err)
		return nil, err
	}

	stats := make([]model.TeamStatistics, 0, len(rows))
	for _, row := range rows {
		spotsLeft := int(row.Capacity) - int(row.PaidCount)
		if spotsLeft < 0 {
			spotsLeft = 0
		}
		stats = append(stats, model.TeamStatistics{
			TeamID:           row.TeamID,
			TeamName:         row.TeamName,
			Capacity:         int(row.Capacity),
			PaidCount:        int(row.PaidCount),
			PendingCount:     int(row.PendingCount),
			WaitlistCount:    int(row.WaitlistCount),
			SpotsLeft:        spotsLeft,
			PaidRevenueCents: row.PaidRevenueCents,
		})
	}

	return stats, nil
}

// GetRegistrationStatistics returns totals across all registrations.
func (r *repository) GetRegistrationStatistics(ctx context.Context) (*model.RegistrationStatistics, error) {
	var result struct {
		Total            int64 `gorm:"column:total"`
		Paid             int64 `gorm:"column:paid"`
		Pending          int64 `gorm:"column:pending"`
		Waitlisted       int64 `gorm:"column:waitlisted"`
		PaidRevenueCents int64 `gorm:"column:paid_revenue_cents"`
	}

	err := r.db.WithContext(ctx).
		Table("registrations").
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' AND is_waitlist = false THEN 1 ELSE 0 END), 0) as paid,
			COALESCE(SUM(CASE WHEN payment_status = 'unpaid' AND is_waitlist = false THEN 1 ELSE 0 END), 0) as pending,
			COALESCE(SUM(CASE WHEN is_waitlist = true THEN 1 ELSE 0 END), 0) as waitlisted,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' AND is_waitlist = false THEN amount_cents ELSE 0 END), 0) as paid_revenue_cents
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetRegistrationStatistics database error", "error", err)
		return nil, err
	}

	return &model.RegistrationStatistics{
		Total:            int(result.Total),
		Paid:             int(result.Paid),
		Pending:          int(result.Pending),
		Waitlisted:       int(result.Waitlisted),
		PaidRevenueCents: result.PaidRevenueCents,
	}, nil
}

// GetDonationStatistics returns totals across donations and reimbursements.
func (r *repository) GetDonationStatistics(ctx context.Context) (*model.DonationStatistics, error) {
	var result struct {
		Count                    int64 `gorm:"column:count"`
		PaidCount                int64 `gorm:"column:paid_count"`
		PaidAmountCents          int64 `gorm:"column:paid_amount_cents"`
		ReimbursementCount       int64 `gorm:"column:reimbursement_count"`
		ReimbursementAmountCents int64 `gorm:"column:reimbursement_amount_cents"`
	}

	err := r.db.WithContext(ctx).
		Table("donations").
		Select(`
			COUNT(*) as count,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN 1 ELSE 0 END), 0) as paid_count,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' AND type = 'donation' THEN amount_cents ELSE 0 END), 0) as paid_amount_cents,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' AND type = 'reimbursement' THEN 1 ELSE 0 END), 0) as reimbursement_count,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' AND type = 'reimbursement' THEN amount_cents ELSE 0 END), 0) as reimbursement_amount_cents
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetDonationStatistics database error", "error", err)
		return nil, err
	}

	return &model.DonationStatistics{
		Count:                    int(result.Count),
		PaidCount:                int(result.PaidCount),
		PaidAmountCents:          result.PaidAmountCents,
		ReimbursementCount:       int(result.ReimbursementCount),
		ReimbursementAmountCents: result.ReimbursementAmountCents,
	}, nil
}
