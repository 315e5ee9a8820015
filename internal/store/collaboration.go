package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/venturebridge/backend/internal/models"
)

// CollabStore provides typed access to the /collaborationRequests collection,
// including the foreign-key filter queries the dashboard reads rely on.
type CollabStore struct {
	client *Client
}

func NewCollabStore(client *Client) *CollabStore {
	return &CollabStore{client: client}
}

func (s *CollabStore) ListRequests(ctx context.Context) ([]models.CollaborationRequest, error) {
	var requests []models.CollaborationRequest
	if err := s.client.List(ctx, CollaborationRequestsCollection, &requests); err != nil {
		return nil, fmt.Errorf("failed to list collaboration requests: %w", err)
	}
	return requests, nil
}

func (s *CollabStore) GetRequestByID(ctx context.Context, id int64) (*models.CollaborationRequest, error) {
	var request models.CollaborationRequest
	if err := s.client.Get(ctx, CollaborationRequestsCollection, id, &request); err != nil {
		return nil, fmt.Errorf("failed to get collaboration request %d: %w", id, err)
	}
	return &request, nil
}

func (s *CollabStore) GetRequestsByEntrepreneur(ctx context.Context, entrepreneurID int64) ([]models.CollaborationRequest, error) {
	return s.queryRequests(ctx, "entrepreneurId", entrepreneurID)
}

func (s *CollabStore) GetRequestsByInvestor(ctx context.Context, investorID int64) ([]models.CollaborationRequest, error) {
	return s.queryRequests(ctx, "investorId", investorID)
}

func (s *CollabStore) queryRequests(ctx context.Context, field string, id int64) ([]models.CollaborationRequest, error) {
	var requests []models.CollaborationRequest
	query := url.Values{field: []string{strconv.FormatInt(id, 10)}}
	if err := s.client.Query(ctx, CollaborationRequestsCollection, query, &requests); err != nil {
		return nil, fmt.Errorf("failed to query collaboration requests by %s: %w", field, err)
	}
	return requests, nil
}

func (s *CollabStore) CreateRequest(ctx context.Context, request *models.CollaborationRequest) (*models.CollaborationRequest, error) {
	var created models.CollaborationRequest
	if err := s.client.Create(ctx, CollaborationRequestsCollection, request, &created); err != nil {
		return nil, fmt.Errorf("failed to create collaboration request: %w", err)
	}
	return &created, nil
}

// UpdateRequestStatus applies a partial update carrying only the status
// field; all other fields of the stored request are left untouched.
func (s *CollabStore) UpdateRequestStatus(ctx context.Context, id int64, status string) (*models.CollaborationRequest, error) {
	var updated models.CollaborationRequest
	patch := map[string]string{"status": status}
	if err := s.client.Patch(ctx, CollaborationRequestsCollection, id, patch, &updated); err != nil {
		return nil, fmt.Errorf("failed to update status of request %d: %w", id, err)
	}
	return &updated, nil
}

func (s *CollabStore) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, CollaborationRequestsCollection, id); err != nil {
		return fmt.Errorf("failed to delete collaboration request %d: %w", id, err)
	}
	return nil
}
