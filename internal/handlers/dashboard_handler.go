package handlers

import (
	"net/http"

	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/services"
	"github.com/venturebridge/backend/pkg/logger"
	"github.com/venturebridge/backend/pkg/middleware"
)

// DashboardHandler serves the per-role summary views.
type DashboardHandler struct {
	Service *services.DashboardService
}

// NewDashboardHandler initializes a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// InvestorDashboardHandler returns the entrepreneur directory and opportunity
// counts for the logged-in investor.
func (h *DashboardHandler) InvestorDashboardHandler(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.GetInvestorDashboard(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to build investor dashboard")
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

// EntrepreneurDashboardHandler returns the enriched collaboration requests
// and status counts for the logged-in entrepreneur.
func (h *DashboardHandler) EntrepreneurDashboardHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil || identity.UserType != models.UserTypeEntrepreneur {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	dashboard, err := h.Service.GetEntrepreneurDashboard(r.Context(), identity.ProfileID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to build entrepreneur dashboard")
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}
