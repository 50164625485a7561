// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cavalryfc/registration-api/internal/statistics/model"
	"github.com/cavalryfc/registration-api/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetStatistics returns the admin dashboard rollups.
	GetStatistics(ctx context.Context) (*model.StatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetStatistics returns the admin dashboard rollups.
func (s *service) GetStatistics(ctx context.Context) (*model.StatisticsResponse, error) {
	teams, err := s.repo.GetTeamStatistics(ctx)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []model.TeamStatistics{}
	}

	regs, err := s.repo.GetRegistrationStatistics(ctx)
	if err != nil {
		return nil, err
	}

	donations, err := s.repo.GetDonationStatistics(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StatisticsResponse{
		Teams:         teams,
		Registrations: *regs,
		Donations:     *donations,
	}, nil
}
