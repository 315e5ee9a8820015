package store

import (
	"context"
	"fmt"

	"github.com/venturebridge/backend/internal/models"
)

// InvestorStore provides typed access to the /investors collection.
type InvestorStore struct {
	client *Client
}

func NewInvestorStore(client *Client) *InvestorStore {
	return &InvestorStore{client: client}
}

func (s *InvestorStore) ListInvestors(ctx context.Context) ([]models.InvestorProfile, error) {
	var investors []models.InvestorProfile
	if err := s.client.List(ctx, InvestorsCollection, &investors); err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return investors, nil
}

func (s *InvestorStore) GetInvestorByID(ctx context.Context, id int64) (*models.InvestorProfile, error) {
	var investor models.InvestorProfile
	if err := s.client.Get(ctx, InvestorsCollection, id, &investor); err != nil {
		return nil, fmt.Errorf("failed to get investor %d: %w", id, err)
	}
	return &investor, nil
}

func (s *InvestorStore) CreateInvestor(ctx context.Context, investor *models.InvestorProfile) (*models.InvestorProfile, error) {
	var created models.InvestorProfile
	if err := s.client.Create(ctx, InvestorsCollection, investor, &created); err != nil {
		return nil, fmt.Errorf("failed to create investor: %w", err)
	}
	return &created, nil
}

func (s *InvestorStore) UpdateInvestor(ctx context.Context, id int64, investor *models.InvestorProfile) (*models.InvestorProfile, error) {
	var updated models.InvestorProfile
	if err := s.client.Update(ctx, InvestorsCollection, id, investor, &updated); err != nil {
		return nil, fmt.Errorf("failed to update investor %d: %w", id, err)
	}
	return &updated, nil
}

func (s *InvestorStore) DeleteInvestor(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, InvestorsCollection, id); err != nil {
		return fmt.Errorf("failed to delete investor %d: %w", id, err)
	}
	return nil
}
