package services

import (
	"context"
	"fmt"

	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/logger"
)

// Placeholder until actual investment tracking exists.
const portfolioValuePlaceholder = "$2.5M"

// CountByStatus counts the requests carrying the given status.
func CountByStatus(requests []models.CollaborationRequest, status string) int {
	count := 0
	for _, request := range requests {
		if request.Status == status {
			count++
		}
	}
	return count
}

// CountTotal returns the number of requests in the collection.
func CountTotal(requests []models.CollaborationRequest) int {
	return len(requests)
}

// InvestorDashboard is the summary shown to a logged-in investor.
type InvestorDashboard struct {
	Entrepreneurs           []models.EntrepreneurProfile `json:"entrepreneurs"`
	TotalEntrepreneurs      int                          `json:"totalEntrepreneurs"`
	InvestmentOpportunities int                          `json:"investmentOpportunities"`
	PortfolioValue          string                       `json:"portfolioValue"`
}

// EntrepreneurDashboard is the summary shown to a logged-in entrepreneur.
type EntrepreneurDashboard struct {
	CollaborationRequests []models.EnrichedRequest `json:"collaborationRequests"`
	TotalRequests         int                      `json:"totalRequests"`
	PendingRequests       int                      `json:"pendingRequests"`
	AcceptedRequests      int                      `json:"acceptedRequests"`
}

// DashboardService derives the per-role summary views from the record store.
type DashboardService struct {
	collabStore       *store.CollabStore
	investorStore     *store.InvestorStore
	entrepreneurStore *store.EntrepreneurStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(collabStore *store.CollabStore, investorStore *store.InvestorStore, entrepreneurStore *store.EntrepreneurStore) *DashboardService {
	return &DashboardService{
		collabStore:       collabStore,
		investorStore:     investorStore,
		entrepreneurStore: entrepreneurStore,
	}
}

// GetInvestorDashboard assembles the entrepreneur directory together with the
// count of startups in an early funding stage.
func (s *DashboardService) GetInvestorDashboard(ctx context.Context) (*InvestorDashboard, error) {
	entrepreneurs, err := s.entrepreneurStore.ListEntrepreneurs(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load entrepreneurs for investor dashboard")
		return nil, fmt.Errorf("failed to fetch investor dashboard data: %w", err)
	}

	opportunities := 0
	for _, entrepreneur := range entrepreneurs {
		for _, stage := range models.EarlyStages {
			if entrepreneur.Stage == stage {
				opportunities++
				break
			}
		}
	}

	return &InvestorDashboard{
		Entrepreneurs:           entrepreneurs,
		TotalEntrepreneurs:      len(entrepreneurs),
		InvestmentOpportunities: opportunities,
		PortfolioValue:          portfolioValuePlaceholder,
	}, nil
}

// GetEntrepreneurDashboard loads the requests targeting the entrepreneur,
// enriches them with live investor profiles and derives the status counts.
func (s *DashboardService) GetEntrepreneurDashboard(ctx context.Context, entrepreneurID int64) (*EntrepreneurDashboard, error) {
	requests, err := s.collabStore.GetRequestsByEntrepreneur(ctx, entrepreneurID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load requests for entrepreneur dashboard")
		return nil, fmt.Errorf("failed to fetch entrepreneur dashboard data: %w", err)
	}

	investors, err := s.investorStore.ListInvestors(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load investors for entrepreneur dashboard")
		return nil, fmt.Errorf("failed to fetch entrepreneur dashboard data: %w", err)
	}

	return &EntrepreneurDashboard{
		CollaborationRequests: EnrichForEntrepreneur(requests, investors),
		TotalRequests:         CountTotal(requests),
		PendingRequests:       CountByStatus(requests, models.StatusPending),
		AcceptedRequests:      CountByStatus(requests, models.StatusAccepted),
	}, nil
}
