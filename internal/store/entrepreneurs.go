package store

import (
	"context"
	"fmt"

	"github.com/venturebridge/backend/internal/models"
)

// EntrepreneurStore provides typed access to the /entrepreneurs collection.
type EntrepreneurStore struct {
	client *Client
}

func NewEntrepreneurStore(client *Client) *EntrepreneurStore {
	return &EntrepreneurStore{client: client}
}

func (s *EntrepreneurStore) ListEntrepreneurs(ctx context.Context) ([]models.EntrepreneurProfile, error) {
	var entrepreneurs []models.EntrepreneurProfile
	if err := s.client.List(ctx, EntrepreneursCollection, &entrepreneurs); err != nil {
		return nil, fmt.Errorf("failed to list entrepreneurs: %w", err)
	}
	return entrepreneurs, nil
}

func (s *EntrepreneurStore) GetEntrepreneurByID(ctx context.Context, id int64) (*models.EntrepreneurProfile, error) {
	var entrepreneur models.EntrepreneurProfile
	if err := s.client.Get(ctx, EntrepreneursCollection, id, &entrepreneur); err != nil {
		return nil, fmt.Errorf("failed to get entrepreneur %d: %w", id, err)
	}
	return &entrepreneur, nil
}

func (s *EntrepreneurStore) CreateEntrepreneur(ctx context.Context, entrepreneur *models.EntrepreneurProfile) (*models.EntrepreneurProfile, error) {
	var created models.EntrepreneurProfile
	if err := s.client.Create(ctx, EntrepreneursCollection, entrepreneur, &created); err != nil {
		return nil, fmt.Errorf("failed to create entrepreneur: %w", err)
	}
	return &created, nil
}

func (s *EntrepreneurStore) UpdateEntrepreneur(ctx context.Context, id int64, entrepreneur *models.EntrepreneurProfile) (*models.EntrepreneurProfile, error) {
	var updated models.EntrepreneurProfile
	if err := s.client.Update(ctx, EntrepreneursCollection, id, entrepreneur, &updated); err != nil {
		return nil, fmt.Errorf("failed to update entrepreneur %d: %w", id, err)
	}
	return &updated, nil
}

func (s *EntrepreneurStore) DeleteEntrepreneur(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, EntrepreneursCollection, id); err != nil {
		return fmt.Errorf("failed to delete entrepreneur %d: %w", id, err)
	}
	return nil
}
