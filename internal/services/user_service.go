package services

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/sirupsen/logrus"
	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/apperrors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserService encapsulates the business logic for user accounts.
type UserService struct {
	userStore *store.UserStore
}

// NewUserService creates a new instance of UserService.
func NewUserService(userStore *store.UserStore) *UserService {
	return &UserService{userStore: userStore}
}

// RegisterUser registers a new user after hashing their password. The user id
// and profile id are allocated from the current user list, matching how the
// record store numbers its seed data.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) (*models.User, error) {
	logrus.Info("Registering new user")

	if user.Email == "" || user.Name == "" || user.Password == "" {
		logrus.Warn("Missing required fields during registration")
		return nil, fmt.Errorf("missing required user fields")
	}

	if !emailRegex.MatchString(user.Email) {
		logrus.WithField("email", user.Email).Warn("Invalid email format during registration")
		return nil, fmt.Errorf("invalid email format")
	}

	if user.UserType != models.UserTypeInvestor && user.UserType != models.UserTypeEntrepreneur {
		logrus.WithField("userType", user.UserType).Warn("Invalid user type during registration")
		return nil, fmt.Errorf("user type must be %q or %q", models.UserTypeInvestor, models.UserTypeEntrepreneur)
	}

	users, err := s.userStore.ListUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list users during registration")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	for _, existing := range users {
		if existing.Email == user.Email {
			logrus.WithField("email", user.Email).Warn("Email already in use")
			return nil, fmt.Errorf("email already in use")
		}
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hashedPwd)

	nextID := int64(1)
	for _, existing := range users {
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}
	user.ID = nextID
	user.ProfileID = nextID

	createdUser, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	logrus.WithFields(logrus.Fields{
		"userID":   createdUser.ID,
		"userType": createdUser.UserType,
	}).Info("User registered successfully")

	return createdUser, nil
}

// AuthenticateUser verifies the email and password and returns the user if
// the credentials are valid.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	logrus.WithField("email", email).Info("Authenticating user")

	user, err := s.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Error("Failed to look up user during login")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if user == nil {
		logrus.WithField("email", email).Warn("User not found")
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrNotAuthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logrus.WithField("email", email).Warn("Invalid credentials")
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrNotAuthenticated)
	}

	logrus.WithField("userID", user.ID).Info("User authenticated successfully")
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userStore.GetUserByID(ctx, id)
	if err != nil {
		logrus.WithField("userID", id).WithError(err).Warn("Failed to retrieve user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a partial update to a user record. The password, when
// present in the patch, is re-hashed before it is stored.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch map[string]interface{}) (*models.User, error) {
	logrus.WithField("userID", id).Info("Updating user")

	if raw, ok := patch["password"]; ok {
		password, ok := raw.(string)
		if !ok || password == "" {
			return nil, fmt.Errorf("password must be a non-empty string")
		}
		hashedPwd, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %v", err)
		}
		patch["password"] = string(hashedPwd)
	}

	user, err := s.userStore.UpdateUser(ctx, id, patch)
	if err != nil {
		logrus.WithError(err).Error("Failed to update user in service")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logrus.WithField("userID", user.ID).Info("User updated successfully")
	return user, nil
}
