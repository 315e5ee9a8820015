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

// EntrepreneurHandler manages HTTP endpoints for entrepreneur profiles.
type EntrepreneurHandler struct {
	Service *services.EntrepreneurService
}

// NewEntrepreneurHandler initializes a new EntrepreneurHandler.
func NewEntrepreneurHandler(service *services.EntrepreneurService) *EntrepreneurHandler {
	return &EntrepreneurHandler{Service: service}
}

// ListEntrepreneursHandler returns every entrepreneur profile.
func (h *EntrepreneurHandler) ListEntrepreneursHandler(w http.ResponseWriter, r *http.Request) {
	entrepreneurs, err := h.Service.ListEntrepreneurs(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to list entrepreneurs")
		writeError(w, err)
		return
	}
	if entrepreneurs == nil {
		entrepreneurs = []models.EntrepreneurProfile{}
	}
	respondJSON(w, http.StatusOK, entrepreneurs)
}

// GetEntrepreneurHandler returns a single entrepreneur profile by id.
func (h *EntrepreneurHandler) GetEntrepreneurHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid entrepreneur ID", http.StatusBadRequest)
		return
	}

	entrepreneur, err := h.Service.GetEntrepreneur(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entrepreneur)
}

// CreateEntrepreneurHandler stores a new entrepreneur profile.
func (h *EntrepreneurHandler) CreateEntrepreneurHandler(w http.ResponseWriter, r *http.Request) {
	var entrepreneur models.EntrepreneurProfile
	if err := json.NewDecoder(r.Body).Decode(&entrepreneur); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode entrepreneur payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateEntrepreneur(r.Context(), &entrepreneur)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateEntrepreneurHandler replaces an entrepreneur profile.
func (h *EntrepreneurHandler) UpdateEntrepreneurHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid entrepreneur ID", http.StatusBadRequest)
		return
	}

	var entrepreneur models.EntrepreneurProfile
	if err := json.NewDecoder(r.Body).Decode(&entrepreneur); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updated, err := h.Service.UpdateEntrepreneur(r.Context(), id, &entrepreneur)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteEntrepreneurHandler removes an entrepreneur profile.
func (h *EntrepreneurHandler) DeleteEntrepreneurHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid entrepreneur ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteEntrepreneur(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
