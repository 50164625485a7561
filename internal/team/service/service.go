// Package service provides business logic layer for the team module.
package service

import (
	"context"

	"go.uber.org/zap"

	teamModel "github.com/cavalryfc/registration-api/internal/team/model"
	"github.com/cavalryfc/registration-api/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// ListTeams returns all teams with live paid counts and spots left.
	ListTeams(ctx context.Context) ([]teamModel.TeamWithCount, error)

	// GetTeam returns a single team.
	GetTeam(ctx context.Context, id uint) (*teamModel.Team, error)

	// CreateTeam creates a new team.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// UpdateTeam applies a partial update to a team's mutable fields.
	UpdateTeam(ctx context.Context, id uint, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListTeams returns all teams with live paid counts and spots left.
func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamWithCount, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.PaidCounts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]teamModel.TeamWithCount, 0, len(teams))
	for _, team := range teams {
		paid := counts[team.ID]
		spotsLeft := team.Capacity - paid
		if spotsLeft < 0 {
			spotsLeft = 0
		}
		result = append(result, teamModel.TeamWithCount{
			Team:              team,
			RegistrationCount: paid,
			SpotsLeft:         spotsLeft,
		})
	}

	return result, nil
}

// GetTeam returns a single team.
func (s *service) GetTeam(ctx context.Context, id uint) (*teamModel.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateTeam creates a new team.
func (s *service) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	if req.Name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	team := &teamModel.Team{
		Name:        req.Name,
		PriceCents:  16000,
		Capacity:    20,
		Description: req.Description,
		Open:        true,
	}

	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, teamModel.ErrInvalidPrice
		}
		team.PriceCents = *req.PriceCents
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, teamModel.ErrInvalidCapacity
		}
		team.Capacity = *req.Capacity
	}
	if req.Open != nil {
		team.Open = *req.Open
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// UpdateTeam applies a partial update to a team's mutable fields.
func (s *service) UpdateTeam(ctx context.Context, id uint, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error) {
	updates := make(map[string]interface{})

	if req.Name != nil {
		if *req.Name == "" {
			return nil, teamModel.ErrInvalidTeamName
		}
		updates["name"] = *req.Name
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, teamModel.ErrInvalidPrice
		}
		updates["price_cents"] = *req.PriceCents
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, teamModel.ErrInvalidCapacity
		}
		updates["capacity"] = *req.Capacity
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Open != nil {
		updates["open"] = *req.Open
	}

	if len(updates) == 0 {
		return nil, teamModel.ErrNoFieldsToUpdate
	}

	return s.repo.Update(ctx, id, updates)
}
