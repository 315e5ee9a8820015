package store

import (
	"context"
	"fmt"
	"net/url"

	"github.com/venturebridge/backend/internal/models"
)

// UserStore provides typed access to the /users collection.
type UserStore struct {
	client *Client
}

func NewUserStore(client *Client) *UserStore {
	return &UserStore{client: client}
}

func (s *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.client.List(ctx, UsersCollection, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, UsersCollection, id, &user); err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given email, or nil when no such
// user exists.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	query := url.Values{"email": []string{email}}
	if err := s.client.Query(ctx, UsersCollection, query, &users); err != nil {
		return nil, fmt.Errorf("failed to query users by email: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	if err := s.client.Create(ctx, UsersCollection, user, &created); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (s *UserStore) UpdateUser(ctx context.Context, id int64, patch map[string]interface{}) (*models.User, error) {
	var updated models.User
	if err := s.client.Patch(ctx, UsersCollection, id, patch, &updated); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &updated, nil
}

func (s *UserStore) DeleteUser(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, UsersCollection, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
