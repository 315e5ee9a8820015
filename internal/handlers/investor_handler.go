package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/services"
	"github.com/venturebridge/backend/pkg/logger"
)

// InvestorHandler manages HTTP endpoints for investor profiles.
type InvestorHandler struct {
	Service *services.InvestorService
}

// NewInvestorHandler initializes a new InvestorHandler.
func NewInvestorHandler(service *services.InvestorService) *InvestorHandler {
	return &InvestorHandler{Service: service}
}

// ListInvestorsHandler returns every investor profile.
func (h *InvestorHandler) ListInvestorsHandler(w http.ResponseWriter, r *http.Request) {
	investors, err := h.Service.ListInvestors(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to list investors")
		writeError(w, err)
		return
	}
	if investors == nil {
		investors = []models.InvestorProfile{}
	}
	respondJSON(w, http.StatusOK, investors)
}

// GetInvestorHandler returns a single investor profile by id.
func (h *InvestorHandler) GetInvestorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid investor ID", http.StatusBadRequest)
		return
	}

	investor, err := h.Service.GetInvestor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, investor)
}

// CreateInvestorHandler stores a new investor profile.
func (h *InvestorHandler) CreateInvestorHandler(w http.ResponseWriter, r *http.Request) {
	var investor models.InvestorProfile
	if err := json.NewDecoder(r.Body).Decode(&investor); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode investor payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateInvestor(r.Context(), &investor)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateInvestorHandler replaces an investor profile.
func (h *InvestorHandler) UpdateInvestorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid investor ID", http.StatusBadRequest)
		return
	}

	var investor models.InvestorProfile
	if err := json.NewDecoder(r.Body).Decode(&investor); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updated, err := h.Service.UpdateInvestor(r.Context(), id, &investor)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteInvestorHandler removes an investor profile.
func (h *InvestorHandler) DeleteInvestorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid investor ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteInvestor(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
