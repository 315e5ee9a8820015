package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/apperrors"
	"github.com/venturebridge/backend/pkg/logger"
)

// Snapshot defaults used when the investor's profile does not carry a field.
const (
	defaultCompany         = "Independent Investor"
	defaultProfileSnippet  = "Investment professional"
	defaultInvestmentRange = "$100K - $1M"
	defaultAvatar          = "??"
)

var defaultSpecialties = []string{"General Investment"}

// CollabService handles the collaboration request lifecycle: creation by an
// investor and the single pending → accepted/rejected transition performed by
// the target entrepreneur.
type CollabService struct {
	collabStore       *store.CollabStore
	investorStore     *store.InvestorStore
	entrepreneurStore *store.EntrepreneurStore
}

// NewCollabService creates a new CollabService.
func NewCollabService(collabStore *store.CollabStore, investorStore *store.InvestorStore, entrepreneurStore *store.EntrepreneurStore) *CollabService {
	return &CollabService{
		collabStore:       collabStore,
		investorStore:     investorStore,
		entrepreneurStore: entrepreneurStore,
	}
}

// CreateRequest sends a collaboration request from the acting investor to the
// given entrepreneur. The investor's display fields are captured into an
// embedded snapshot at this point and never refreshed afterwards. A blank
// message is replaced by the default one. The stored request, including the
// id assigned by the record store, is returned.
func (s *CollabService) CreateRequest(ctx context.Context, identity *models.Identity, entrepreneurID int64, message string) (*models.CollaborationRequest, error) {
	if identity == nil {
		logger.Log.Warn("Attempt to create a collaboration request without identity")
		return nil, apperrors.ErrNotAuthenticated
	}

	// The target must exist before anything is written. The store has no
	// foreign-key constraints, so the reference is validated here.
	entrepreneur, err := s.entrepreneurStore.GetEntrepreneurByID(ctx, entrepreneurID)
	if err != nil {
		logger.Log.WithField("entrepreneur_id", entrepreneurID).WithError(err).Warn("Target entrepreneur lookup failed")
		return nil, fmt.Errorf("target entrepreneur: %w", err)
	}

	snapshot := s.buildSnapshot(ctx, identity)

	if strings.TrimSpace(message) == "" {
		message = models.DefaultRequestMessage
	}

	request := &models.CollaborationRequest{
		InvestorID:       identity.UserID,
		EntrepreneurID:   entrepreneur.ID,
		InvestorName:     snapshot.Name,
		EntrepreneurName: entrepreneur.Name,
		Status:           models.StatusPending,
		Message:          message,
		RequestDate:      time.Now().UTC(),
		Investor:         snapshot,
	}

	created, err := s.collabStore.CreateRequest(ctx, request)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to persist collaboration request")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"request_id":      created.ID,
		"investor_id":     created.InvestorID,
		"entrepreneur_id": created.EntrepreneurID,
	}).Info("Collaboration request created")
	return created, nil
}

// buildSnapshot captures the investor's display fields as they are right now,
// falling back to the documented defaults for anything the profile does not
// carry. A missing profile record is not an error: the snapshot is then built
// from the identity alone.
func (s *CollabService) buildSnapshot(ctx context.Context, identity *models.Identity) models.InvestorSnapshot {
	snapshot := models.InvestorSnapshot{
		Name:            identity.Name,
		Company:         defaultCompany,
		ProfileSnippet:  defaultProfileSnippet,
		Avatar:          initials(identity.Name),
		InvestmentRange: defaultInvestmentRange,
		Specialties:     defaultSpecialties,
	}

	profile, err := s.investorStore.GetInvestorByID(ctx, identity.ProfileID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Log.WithField("profile_id", identity.ProfileID).WithError(err).Warn("Investor profile lookup failed, using defaults")
		}
		return snapshot
	}

	if profile.Name != "" {
		snapshot.Name = profile.Name
	}
	if profile.Company != "" {
		snapshot.Company = profile.Company
	}
	if profile.ProfileSnippet != "" {
		snapshot.ProfileSnippet = profile.ProfileSnippet
	}
	if profile.Avatar != "" {
		snapshot.Avatar = profile.Avatar
	} else {
		snapshot.Avatar = initials(snapshot.Name)
	}
	if profile.InvestmentRange != "" {
		snapshot.InvestmentRange = profile.InvestmentRange
	}
	if len(profile.Specialties) > 0 {
		snapshot.Specialties = profile.Specialties
	}
	snapshot.PortfolioSize = profile.PortfolioSize
	snapshot.SuccessfulExits = profile.SuccessfulExits

	return snapshot
}

// initials derives an avatar from a name: first letter of each word, "??"
// when the name is empty.
func initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return defaultAvatar
	}
	var b strings.Builder
	for _, field := range fields {
		r, _ := utf8.DecodeRuneInString(field)
		b.WriteRune(r)
	}
	return b.String()
}

// RespondToRequest moves a pending request to accepted or rejected. Both
// target states are terminal: responding to a request that is no longer
// pending fails with ErrInvalidTransition. The updated record is returned.
//
// Two sessions racing on the same pending request are still last-write-wins
// at the store; the pending check narrows the window but cannot close it
// without store-side compare-and-swap.
func (s *CollabService) RespondToRequest(ctx context.Context, requestID int64, accept bool) (*models.CollaborationRequest, error) {
	request, err := s.collabStore.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("could not find request: %w", err)
	}

	if request.Status != models.StatusPending {
		logger.Log.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     request.Status,
		}).Warn("Attempted transition out of a terminal state")
		return nil, fmt.Errorf("%w: request %d is already %s", apperrors.ErrInvalidTransition, requestID, request.Status)
	}

	status := models.StatusRejected
	if accept {
		status = models.StatusAccepted
	}

	updated, err := s.collabStore.UpdateRequestStatus(ctx, requestID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"request_id": requestID,
		"status":     status,
	}).Info("Collaboration request responded to")
	return updated, nil
}

// GetRequest fetches a single request by id.
func (s *CollabService) GetRequest(ctx context.Context, id int64) (*models.CollaborationRequest, error) {
	return s.collabStore.GetRequestByID(ctx, id)
}

// ListRequests returns all collaboration requests.
func (s *CollabService) ListRequests(ctx context.Context) ([]models.CollaborationRequest, error) {
	return s.collabStore.ListRequests(ctx)
}

// GetRequestsForEntrepreneur returns the requests targeting an entrepreneur.
func (s *CollabService) GetRequestsForEntrepreneur(ctx context.Context, entrepreneurID int64) ([]models.CollaborationRequest, error) {
	return s.collabStore.GetRequestsByEntrepreneur(ctx, entrepreneurID)
}

// GetRequestsForInvestor returns the requests authored by an investor.
func (s *CollabService) GetRequestsForInvestor(ctx context.Context, investorID int64) ([]models.CollaborationRequest, error) {
	return s.collabStore.GetRequestsByInvestor(ctx, investorID)
}

// DeleteRequest removes a request. No workflow calls this; it exists as a raw
// store operation only.
func (s *CollabService) DeleteRequest(ctx context.Context, id int64) error {
	return s.collabStore.DeleteRequest(ctx, id)
}
