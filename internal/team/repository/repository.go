// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	regModel "github.com/cavalryfc/registration-api/internal/registration/model"
	teamModel "github.com/cavalryfc/registration-api/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// List returns all teams ordered by id.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id uint) (*teamModel.Team, error)

	// Create creates a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// Update applies a partial update to a team's mutable fields.
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*teamModel.Team, error)

	// PaidCounts returns the number of paid, non-waitlist registrations per team.
	PaidCounts(ctx context.Context) (map[uint]int, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns all teams ordered by id.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}

	return teams, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// Update applies a partial update to a team's mutable fields.
func (r *repository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*teamModel.Team, error) {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, teamModel.ErrTeamNotFound
	}

	return r.GetByID(ctx, id)
}

// PaidCounts returns the number of paid, non-waitlist registrations per team.
// Unpaid, abandoned and waitlisted registrations never count against capacity.
func (r *repository) PaidCounts(ctx context.Context) (map[uint]int, error) {
	var rows []struct {
		TeamID uint  `gorm:"column:team_id"`
		Count  int64 `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Table("registrations").
		Select("team_id, COUNT(*) as count").
		Where("payment_status = ? AND is_waitlist = ?", regModel.PaymentStatusPaid, false).
		Group("team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.TeamID] = int(row.Count)
	}

	return counts, nil
}
