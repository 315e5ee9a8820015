package services

import (
	"context"
	"fmt"

	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/logger"
)

// EntrepreneurService encapsulates the business logic for entrepreneur
// profiles.
type EntrepreneurService struct {
	entrepreneurStore *store.EntrepreneurStore
}

// NewEntrepreneurService creates a new instance of EntrepreneurService.
func NewEntrepreneurService(entrepreneurStore *store.EntrepreneurStore) *EntrepreneurService {
	return &EntrepreneurService{entrepreneurStore: entrepreneurStore}
}

// ListEntrepreneurs returns every entrepreneur profile.
func (s *EntrepreneurService) ListEntrepreneurs(ctx context.Context) ([]models.EntrepreneurProfile, error) {
	return s.entrepreneurStore.ListEntrepreneurs(ctx)
}

// GetEntrepreneur retrieves an entrepreneur profile by its ID.
func (s *EntrepreneurService) GetEntrepreneur(ctx context.Context, id int64) (*models.EntrepreneurProfile, error) {
	entrepreneur, err := s.entrepreneurStore.GetEntrepreneurByID(ctx, id)
	if err != nil {
		logger.Log.WithField("entrepreneur_id", id).WithError(err).Warn("Failed to get entrepreneur")
		return nil, err
	}
	return entrepreneur, nil
}

// CreateEntrepreneur stores a new entrepreneur profile.
func (s *EntrepreneurService) CreateEntrepreneur(ctx context.Context, entrepreneur *models.EntrepreneurProfile) (*models.EntrepreneurProfile, error) {
	if entrepreneur.Name == "" {
		logger.Log.Warn("Entrepreneur name is empty during creation")
		return nil, fmt.Errorf("entrepreneur name is required")
	}

	created, err := s.entrepreneurStore.CreateEntrepreneur(ctx, entrepreneur)
	if err != nil {
		logger.Log.WithError(err).Error("Service failed to create entrepreneur")
		return nil, err
	}

	logger.Log.WithField("entrepreneur_id", created.ID).Info("Entrepreneur profile created")
	return created, nil
}

// UpdateEntrepreneur replaces an existing entrepreneur profile.
func (s *EntrepreneurService) UpdateEntrepreneur(ctx context.Context, id int64, entrepreneur *models.EntrepreneurProfile) (*models.EntrepreneurProfile, error) {
	updated, err := s.entrepreneurStore.UpdateEntrepreneur(ctx, id, entrepreneur)
	if err != nil {
		logger.Log.WithField("entrepreneur_id", id).WithError(err).Error("Failed to update entrepreneur")
		return nil, err
	}

	logger.Log.WithField("entrepreneur_id", id).Info("Entrepreneur profile updated")
	return updated, nil
}

// DeleteEntrepreneur removes an entrepreneur profile.
func (s *EntrepreneurService) DeleteEntrepreneur(ctx context.Context, id int64) error {
	if err := s.entrepreneurStore.DeleteEntrepreneur(ctx, id); err != nil {
		logger.Log.WithField("entrepreneur_id", id).WithError(err).Error("Failed to delete entrepreneur")
		return err
	}
	return nil
}
