// Package service provides the payment lifecycle logic for donations and
// reimbursements.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	donationModel "github.com/cavalryfc/registration-api/internal/donation/model"
	"github.com/cavalryfc/registration-api/internal/donation/repository"
	"github.com/cavalryfc/registration-api/internal/payment"
)

// MetadataKey is the session metadata key carrying the donation id.
const MetadataKey = "donationId"

// Service defines the donation lifecycle operations.
type Service interface {
	// Checkout persists a pending donation and issues a checkout session.
	Checkout(ctx context.Context, req *donationModel.CheckoutRequest) (*donationModel.CheckoutResponse, error)

	// Verify resolves a checkout session and, if paid, transitions the
	// matching record. Idempotent on re-delivery.
	Verify(ctx context.Context, sessionID string) (*donationModel.VerifyResult, error)

	// ConfirmPaid transitions a record to paid from a webhook notification.
	ConfirmPaid(ctx context.Context, donationID uint, paymentIntentID string) error

	// List returns all donations for the admin view.
	List(ctx context.Context) ([]donationModel.Donation, error)
}

type service struct {
	repo        repository.Repository
	gateway     payment.Gateway
	frontendURL string
	logger      *zap.SugaredLogger
}

// New creates a new donation service instance.
func New(repo repository.Repository, gateway payment.Gateway, frontendURL string, logger *zap.SugaredLogger) Service {
	return &service{
		repo:        repo,
		gateway:     gateway,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Checkout persists a pending donation and issues a checkout session.
func (s *service) Checkout(ctx context.Context, req *donationModel.CheckoutRequest) (*donationModel.CheckoutResponse, error) {
	if req.AmountCents < donationModel.MinimumAmountCents {
		return nil, donationModel.ErrAmountBelowMinimum
	}

	recordType := donationModel.TypeDonation
	if req.Type == donationModel.TypeReimbursement {
		recordType = donationModel.TypeReimbursement
	}

	donation := &donationModel.Donation{
		Type:          recordType,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Comment:       req.Comment,
		AmountCents:   req.AmountCents,
		Currency:      "usd",
		PaymentStatus: donationModel.PaymentStatusUnpaid,
	}
	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, err
	}

	productName, description := checkoutCopy(recordType, req.Comment)
	returnPath := "/donate"
	if recordType == donationModel.TypeReimbursement {
		returnPath = "/reimburse"
	}

	session, err := s.gateway.CreateSession(ctx, payment.CheckoutParams{
		AmountCents:    int64(req.AmountCents),
		ProductName:    productName,
		Description:    description,
		CustomerEmail:  req.DonorEmail,
		CorrelationKey: MetadataKey,
		CorrelationID:  strconv.FormatUint(uint64(donation.ID), 10),
		SuccessURL:     s.frontendURL + returnPath + "?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      s.frontendURL + returnPath + "?canceled=true",
	})
	if err != nil {
		s.logger.Errorw("donation checkout session creation failed, pending record preserved",
			"donation_id", donation.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", donationModel.ErrUpstreamFailure, err)
	}

	if err := s.repo.SetSessionID(ctx, donation.ID, session.ID); err != nil {
		return nil, err
	}

	return &donationModel.CheckoutResponse{URL: session.URL}, nil
}

// checkoutCopy returns the hosted checkout page line-item copy per record type.
func checkoutCopy(recordType, comment string) (name, description string) {
	if recordType == donationModel.TypeReimbursement {
		name = "Cavalry FC Booster Club Reimbursement"
		description = "Cash reimbursement payment"
		if comment != "" {
			description = comment
		}
		return name, description
	}

	name = "Donation to Cavalry FC Booster Club"
	description = "Thank you for your support!"
	if comment != "" {
		description = "Message: " + comment
	}
	return name, description
}

// Verify resolves a checkout session with the provider. For an unknown or
// unpaid session, the provider's raw status is returned as-is.
func (s *service) Verify(ctx context.Context, sessionID string) (*donationModel.VerifyResult, error) {
	status, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", donationModel.ErrUpstreamFailure, err)
	}

	if status.PaymentStatus != payment.PaymentStatusPaid {
		return &donationModel.VerifyResult{Status: status.PaymentStatus}, nil
	}

	id, ok := parseCorrelationID(status.Metadata)
	if !ok {
		return &donationModel.VerifyResult{Status: status.PaymentStatus}, nil
	}

	updated, err := s.repo.MarkPaid(ctx, id, status.PaymentIntentID, time.Now())
	if err != nil {
		return nil, err
	}
	if !updated {
		s.logger.Infow("verify for already-paid donation", "donation_id", id)
	}

	donation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &donationModel.VerifyResult{
		Status:   donationModel.PaymentStatusPaid,
		Donation: donation,
	}, nil
}

// ConfirmPaid transitions a record to paid from a webhook notification.
func (s *service) ConfirmPaid(ctx context.Context, donationID uint, paymentIntentID string) error {
	updated, err := s.repo.MarkPaid(ctx, donationID, paymentIntentID, time.Now())
	if err != nil {
		return err
	}
	if !updated {
		s.logger.Infow("webhook for already-paid donation", "donation_id", donationID)
	}
	return nil
}

// List returns all donations for the admin view.
func (s *service) List(ctx context.Context) ([]donationModel.Donation, error) {
	return s.repo.List(ctx)
}

// parseCorrelationID recovers the donation id from session metadata.
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
