package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/apperrors"
)

func newUserService(t *testing.T, fake *fakeStore) *UserService {
	t.Helper()
	return NewUserService(store.NewUserStore(fake.client(t)))
}

func TestRegisterUserHashesPasswordAndAssignsIDs(t *testing.T) {
	fake := newFakeStore()
	fake.put(t, "users", 4, models.User{Name: "Existing", Email: "existing@example.com", Password: "x", UserType: models.UserTypeInvestor})
	service := newUserService(t, fake)

	created, err := service.RegisterUser(context.Background(), &models.User{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "s3cret",
		UserType: models.UserTypeInvestor,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, int64(5), created.ProfileID)
	assert.NotEqual(t, "s3cret", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")))
}

func TestRegisterUserValidation(t *testing.T) {
	service := newUserService(t, newFakeStore())

	cases := []struct {
		name string
		user models.User
	}{
		{"missing fields", models.User{Email: "a@b.co"}},
		{"bad email", models.User{Name: "A", Email: "not-an-email", Password: "p", UserType: models.UserTypeInvestor}},
		{"bad user type", models.User{Name: "A", Email: "a@b.co", Password: "p", UserType: "admin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.RegisterUser(context.Background(), &tc.user)
			assert.Error(t, err)
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	fake := newFakeStore()
	fake.put(t, "users", 1, models.User{Name: "Existing", Email: "jane@example.com", Password: "x", UserType: models.UserTypeInvestor})
	service := newUserService(t, fake)

	_, err := service.RegisterUser(context.Background(), &models.User{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "s3cret",
		UserType: models.UserTypeInvestor,
	})
	assert.ErrorContains(t, err, "email already in use")
}

func TestAuthenticateUser(t *testing.T) {
	fake := newFakeStore()
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	fake.put(t, "users", 1, models.User{Name: "Jane Doe", Email: "jane@example.com", Password: string(hashed), UserType: models.UserTypeInvestor, ProfileID: 1})
	service := newUserService(t, fake)

	user, err := service.AuthenticateUser(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = service.AuthenticateUser(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	_, err = service.AuthenticateUser(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	fake := newFakeStore()
	fake.put(t, "users", 1, models.User{Name: "Jane Doe", Email: "jane@example.com", Password: "old", UserType: models.UserTypeInvestor})
	service := newUserService(t, fake)

	updated, err := service.UpdateUser(context.Background(), 1, map[string]interface{}{"password": "newpass"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass")))
}
