package services

import (
	"context"
	"fmt"

	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/logger"
)

// InvestorService encapsulates the business logic for investor profiles.
type InvestorService struct {
	investorStore *store.InvestorStore
}

// NewInvestorService creates a new instance of InvestorService.
func NewInvestorService(investorStore *store.InvestorStore) *InvestorService {
	return &InvestorService{investorStore: investorStore}
}

// ListInvestors returns every investor profile.
func (s *InvestorService) ListInvestors(ctx context.Context) ([]models.InvestorProfile, error) {
	return s.investorStore.ListInvestors(ctx)
}

// GetInvestor retrieves an investor profile by its ID.
func (s *InvestorService) GetInvestor(ctx context.Context, id int64) (*models.InvestorProfile, error) {
	investor, err := s.investorStore.GetInvestorByID(ctx, id)
	if err != nil {
		logger.Log.WithField("investor_id", id).WithError(err).Warn("Failed to get investor")
		return nil, err
	}
	return investor, nil
}

// CreateInvestor stores a new investor profile.
func (s *InvestorService) CreateInvestor(ctx context.Context, investor *models.InvestorProfile) (*models.InvestorProfile, error) {
	if investor.Name == "" {
		logger.Log.Warn("Investor name is empty during creation")
		return nil, fmt.Errorf("investor name is required")
	}

	created, err := s.investorStore.CreateInvestor(ctx, investor)
	if err != nil {
		logger.Log.WithError(err).Error("Service failed to create investor")
		return nil, err
	}

	logger.Log.WithField("investor_id", created.ID).Info("Investor profile created")
	return created, nil
}

// UpdateInvestor replaces an existing investor profile.
func (s *InvestorService) UpdateInvestor(ctx context.Context, id int64, investor *models.InvestorProfile) (*models.InvestorProfile, error) {
	updated, err := s.investorStore.UpdateInvestor(ctx, id, investor)
	if err != nil {
		logger.Log.WithField("investor_id", id).WithError(err).Error("Failed to update investor")
		return nil, err
	}

	logger.Log.WithField("investor_id", id).Info("Investor profile updated")
	return updated, nil
}

// DeleteInvestor removes an investor profile.
func (s *InvestorService) DeleteInvestor(ctx context.Context, id int64) error {
	if err := s.investorStore.DeleteInvestor(ctx, id); err != nil {
		logger.Log.WithField("investor_id", id).WithError(err).Error("Failed to delete investor")
		return err
	}
	return nil
}
