package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/apperrors"
)

func newCollabService(t *testing.T, fake *fakeStore) *CollabService {
	t.Helper()
	client := fake.client(t)
	return NewCollabService(store.NewCollabStore(client), store.NewInvestorStore(client), store.NewEntrepreneurStore(client))
}

func investorIdentity() *models.Identity {
	return &models.Identity{
		UserID:    1,
		Name:      "Jane Doe",
		Email:     "jane@capital.example",
		UserType:  models.UserTypeInvestor,
		ProfileID: 1,
	}
}

func seedEntrepreneur(t *testing.T, fake *fakeStore) {
	fake.put(t, "entrepreneurs", 3, models.EntrepreneurProfile{
		Name:        "Omar Hassan",
		StartupName: "GreenGrid",
		Stage:       "Seed",
	})
}

func TestCreateRequestSetsPendingAndDate(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	service := newCollabService(t, fake)

	before := time.Now().UTC()
	request, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "Let's talk.")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, request.Status)
	assert.NotZero(t, request.ID)
	assert.Equal(t, "Let's talk.", request.Message)
	assert.Equal(t, int64(1), request.InvestorID)
	assert.Equal(t, int64(3), request.EntrepreneurID)
	assert.Equal(t, "Omar Hassan", request.EntrepreneurName)
	assert.WithinDuration(t, before, request.RequestDate, 5*time.Second)
}

func TestCreateRequestDefaultsMessage(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	service := newCollabService(t, fake)

	for _, message := range []string{"", "   \t\n"} {
		request, err := service.CreateRequest(context.Background(), investorIdentity(), 3, message)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultRequestMessage, request.Message)
	}
}

func TestCreateRequestSnapshotDefaults(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	// Investor profile exists but carries no display fields beyond the name.
	fake.put(t, "investors", 1, models.InvestorProfile{Name: "Jane Doe"})
	service := newCollabService(t, fake)

	request, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "")
	require.NoError(t, err)

	snapshot := request.Investor
	assert.Equal(t, "Jane Doe", snapshot.Name)
	assert.Equal(t, "Independent Investor", snapshot.Company)
	assert.Equal(t, "Investment professional", snapshot.ProfileSnippet)
	assert.Equal(t, "JD", snapshot.Avatar)
	assert.Equal(t, "$100K - $1M", snapshot.InvestmentRange)
	assert.Equal(t, []string{"General Investment"}, snapshot.Specialties)
	assert.Zero(t, snapshot.PortfolioSize)
	assert.Zero(t, snapshot.SuccessfulExits)
}

func TestCreateRequestSnapshotFromProfile(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	fake.put(t, "investors", 1, models.InvestorProfile{
		Name:            "Jane Doe",
		Company:         "Doe Capital",
		ProfileSnippet:  "Early-stage climate investor",
		Avatar:          "JD",
		InvestmentRange: "$500K - $5M",
		Specialties:     []string{"Climate", "Energy"},
		PortfolioSize:   12,
		SuccessfulExits: 4,
	})
	service := newCollabService(t, fake)

	request, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "")
	require.NoError(t, err)

	assert.Equal(t, "Doe Capital", request.Investor.Company)
	assert.Equal(t, []string{"Climate", "Energy"}, request.Investor.Specialties)
	assert.Equal(t, 12, request.Investor.PortfolioSize)
	assert.Equal(t, 4, request.Investor.SuccessfulExits)
}

func TestCreateRequestMissingProfileUsesIdentity(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	service := newCollabService(t, fake)

	request, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", request.Investor.Name)
	assert.Equal(t, "JD", request.Investor.Avatar)

	anonymous := investorIdentity()
	anonymous.Name = ""
	request, err = service.CreateRequest(context.Background(), anonymous, 3, "")
	require.NoError(t, err)
	assert.Equal(t, "??", request.Investor.Avatar)
}

func TestCreateRequestNotAuthenticated(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	service := newCollabService(t, fake)

	_, err := service.CreateRequest(context.Background(), nil, 3, "")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestCreateRequestUnknownEntrepreneur(t *testing.T) {
	fake := newFakeStore()
	service := newCollabService(t, fake)

	_, err := service.CreateRequest(context.Background(), investorIdentity(), 42, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateRequestPersistenceFailure(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	fake.failWrites = true
	service := newCollabService(t, fake)

	_, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "")
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestRespondToRequestAccept(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	service := newCollabService(t, fake)

	created, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "hello")
	require.NoError(t, err)

	updated, err := service.RespondToRequest(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	// The transition is a partial update: everything else must survive.
	assert.Equal(t, "hello", updated.Message)
	assert.Equal(t, created.InvestorID, updated.InvestorID)

	var stored models.CollaborationRequest
	fake.get(t, "collaborationRequests", created.ID, &stored)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

func TestRespondToRequestReject(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	service := newCollabService(t, fake)

	created, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "")
	require.NoError(t, err)

	updated, err := service.RespondToRequest(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
}

func TestRespondToRequestTerminalStateRejected(t *testing.T) {
	fake := newFakeStore()
	seedEntrepreneur(t, fake)
	service := newCollabService(t, fake)

	created, err := service.CreateRequest(context.Background(), investorIdentity(), 3, "")
	require.NoError(t, err)

	_, err = service.RespondToRequest(context.Background(), created.ID, true)
	require.NoError(t, err)

	// Accepted is terminal: a later rejection attempt must fail and leave the
	// stored status untouched.
	_, err = service.RespondToRequest(context.Background(), created.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	var stored models.CollaborationRequest
	fake.get(t, "collaborationRequests", created.ID, &stored)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

func TestRespondToRequestUnknownID(t *testing.T) {
	fake := newFakeStore()
	service := newCollabService(t, fake)

	_, err := service.RespondToRequest(context.Background(), 99, true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetRequestsForEntrepreneurFiltersByTarget(t *testing.T) {
	fake := newFakeStore()
	fake.put(t, "collaborationRequests", 1, models.CollaborationRequest{InvestorID: 1, EntrepreneurID: 3, Status: models.StatusPending})
	fake.put(t, "collaborationRequests", 2, models.CollaborationRequest{InvestorID: 1, EntrepreneurID: 4, Status: models.StatusPending})
	fake.put(t, "collaborationRequests", 3, models.CollaborationRequest{InvestorID: 2, EntrepreneurID: 3, Status: models.StatusAccepted})
	service := newCollabService(t, fake)

	requests, err := service.GetRequestsForEntrepreneur(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	for _, request := range requests {
		assert.Equal(t, int64(3), request.EntrepreneurID)
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", initials("Jane Doe"))
	assert.Equal(t, "J", initials("Jane"))
	assert.Equal(t, "ABC", initials("Alice Bob Carol"))
	assert.Equal(t, "??", initials(""))
	assert.Equal(t, "??", initials("   "))
}
