// Package service provides the payment lifecycle logic for registrations.
package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/payment"
	regModel "github.com/cavalryfc/registration-api/internal/registration/model"
	"github.com/cavalryfc/registration-api/internal/registration/repository"
	teamModel "github.com/cavalryfc/registration-api/internal/team/model"
	teamRepository "github.com/cavalryfc/registration-api/internal/team/repository"
)

// MetadataKey is the session metadata key carrying the registration id, used
// to correlate verify/webhook callbacks with the pending record.
const MetadataKey = "registrationId"

// Service defines the registration lifecycle operations.
type Service interface {
	// Checkout validates the intake, persists a pending record and issues a
	// hosted checkout session. Returns the redirect URL.
	Checkout(ctx context.Context, req *regModel.IntakeRequest) (*regModel.CheckoutResponse, error)

	// Waitlist persists a waitlisted record; no payment is ever expected.
	Waitlist(ctx context.Context, req *regModel.IntakeRequest) (*regModel.Registration, error)

	// Verify resolves a checkout session and, if paid, transitions the
	// matching record. Idempotent: re-verifying a paid record is a no-op.
	Verify(ctx context.Context, sessionID string) (*regModel.VerifyResult, error)

	// ConfirmPaid transitions a record to paid from a webhook notification.
	// Idempotent in the same way as Verify.
	ConfirmPaid(ctx context.Context, registrationID uint, paymentIntentID string) error

	// List returns registrations for the admin view, team name joined.
	List(ctx context.Context, statusFilter string) ([]regModel.AdminRegistration, error)

	// WriteCSV streams registrations as CSV with the fixed export columns.
	WriteCSV(ctx context.Context, w io.Writer, statusFilter string) error

	// Delete removes a registration record.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo        repository.Repository
	gateway     payment.Gateway
	db          *gorm.DB
	frontendURL string
	logger      *zap.SugaredLogger
}

// New creates a new registration service instance.
func New(repo repository.Repository, gateway payment.Gateway, db *gorm.DB, frontendURL string, logger *zap.SugaredLogger) Service {
	return &service{
		repo:        repo,
		gateway:     gateway,
		db:          db,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Checkout validates the intake, persists a pending record against the
// team's current price and issues a checkout session.
//
// The capacity check and the insert run in one transaction so a stale read
// cannot admit a submission past a full team. Two in-flight checkouts that
// both pass the check can still both complete payment later; that residual
// window is accepted (see DESIGN.md).
func (s *service) Checkout(ctx context.Context, req *regModel.IntakeRequest) (*regModel.CheckoutResponse, error) {
	if !req.WaiverAccepted || !req.AgeVerificationAccepted || !req.PhotoReleaseAccepted {
		return nil, regModel.ErrConsentRequired
	}

	var reg *regModel.Registration
	var team *teamModel.Team

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := teamRepository.New(tx)
		txRegs := repository.New(tx)

		var err error
		team, err = txTeams.GetByID(ctx, req.TeamID)
		if err != nil {
			return err
		}
		if !team.Open {
			return regModel.ErrTeamClosed
		}

		paid, err := txRegs.CountPaid(ctx, req.TeamID)
		if err != nil {
			return err
		}
		if paid >= team.Capacity {
			return regModel.ErrTeamFull
		}

		reg = req.ToRegistration()
		reg.AmountCents = team.PriceCents

		return txRegs.Create(ctx, reg)
	})
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.CreateSession(ctx, payment.CheckoutParams{
		AmountCents:    int64(team.PriceCents),
		ProductName:    fmt.Sprintf("%s Registration", team.Name),
		Description:    fmt.Sprintf("Player: %s %s", req.PlayerFirstName, req.PlayerLastName),
		CustomerEmail:  req.Guardian1Email,
		CorrelationKey: MetadataKey,
		CorrelationID:  strconv.FormatUint(uint64(reg.ID), 10),
		SuccessURL:     s.frontendURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      s.frontendURL + "/?canceled=true",
	})
	if err != nil {
		// The pending record is intentionally preserved for manual
		// reconciliation; admin tooling filters it out as unpaid residue.
		s.logger.Errorw("checkout session creation failed, pending record preserved",
			"registration_id", reg.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", regModel.ErrUpstreamFailure, err)
	}

	if err := s.repo.SetSessionID(ctx, reg.ID, session.ID); err != nil {
		return nil, err
	}

	return &regModel.CheckoutResponse{URL: session.URL}, nil
}

// Waitlist persists a waitlisted record. The waitlist path does not gate on
// the payment-blocking consents; whatever was submitted is persisted. The
// team's price is still snapshotted for later reference, but no session is
// issued and the record can never transition to paid.
func (s *service) Waitlist(ctx context.Context, req *regModel.IntakeRequest) (*regModel.Registration, error) {
	var reg *regModel.Registration

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := teamRepository.New(tx)
		txRegs := repository.New(tx)

		team, err := txTeams.GetByID(ctx, req.TeamID)
		if err != nil {
			return err
		}

		reg = req.ToRegistration()
		reg.AmountCents = team.PriceCents
		reg.IsWaitlist = true

		return txRegs.Create(ctx, reg)
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// Verify resolves a checkout session with the provider. For an unknown or
// unpaid session, the provider's raw status is returned as-is.
func (s *service) Verify(ctx context.Context, sessionID string) (*regModel.VerifyResult, error) {
	status, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", regModel.ErrUpstreamFailure, err)
	}

	if status.PaymentStatus != payment.PaymentStatusPaid {
		return &regModel.VerifyResult{Status: status.PaymentStatus}, nil
	}

	id, ok := parseCorrelationID(status.Metadata)
	if !ok {
		// A foreign session: paid, but not one of ours.
		return &regModel.VerifyResult{Status: status.PaymentStatus}, nil
	}

	updated, err := s.repo.MarkPaid(ctx, id, status.PaymentIntentID, time.Now())
	if err != nil {
		return nil, err
	}
	if !updated {
		s.logger.Infow("verify for already-paid registration", "registration_id", id)
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enriched := regModel.AdminRegistration{
		Registration:  *reg,
		Guardian1Name: reg.Guardian1FirstName + " " + reg.Guardian1LastName,
	}
	if reg.TeamID != nil {
		team, err := teamRepository.New(s.db).GetByID(ctx, *reg.TeamID)
		if err == nil {
			enriched.TeamName = team.Name
		} else {
			enriched.TeamName = "Unknown Team"
		}
	} else {
		enriched.TeamName = "Unknown Team"
	}

	return &regModel.VerifyResult{
		Status:       regModel.PaymentStatusPaid,
		Registration: &enriched,
	}, nil
}

// ConfirmPaid transitions a record to paid from a webhook notification.
func (s *service) ConfirmPaid(ctx context.Context, registrationID uint, paymentIntentID string) error {
	updated, err := s.repo.MarkPaid(ctx, registrationID, paymentIntentID, time.Now())
	if err != nil {
		return err
	}
	if !updated {
		s.logger.Infow("webhook for already-paid registration", "registration_id", registrationID)
	}
	return nil
}

// List returns registrations for the admin view with team names joined in.
func (s *service) List(ctx context.Context, statusFilter string) ([]regModel.AdminRegistration, error) {
	regs, err := s.repo.List(ctx, statusFilter)
	if err != nil {
		return nil, err
	}

	teams, err := teamRepository.New(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	teamNames := make(map[uint]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	enriched := make([]regModel.AdminRegistration, 0, len(regs))
	for _, reg := range regs {
		row := regModel.AdminRegistration{
			Registration:  reg,
			TeamName:      "Unknown",
			Guardian1Name: reg.Guardian1FirstName + " " + reg.Guardian1LastName,
		}
		if reg.TeamID != nil {
			if name, ok := teamNames[*reg.TeamID]; ok {
				row.TeamName = name
			}
		}
		enriched = append(enriched, row)
	}

	return enriched, nil
}

// Delete removes a registration record.
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// parseCorrelationID recovers the registration id from session metadata.
func parseCorrelationID(metadata map[string]string) (uint, bool) {
	raw, ok := metadata[MetadataKey]
	if !ok || raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
