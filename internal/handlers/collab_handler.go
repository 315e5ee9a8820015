package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/venturebridge/backend/internal/models"
	"github.com/venturebridge/backend/internal/services"
	"github.com/venturebridge/backend/pkg/logger"
	"github.com/venturebridge/backend/pkg/middleware"
)

// CollabHandler manages HTTP endpoints for collaboration requests.
type CollabHandler struct {
	Service *services.CollabService
}

// NewCollabHandler initializes a new CollabHandler.
func NewCollabHandler(service *services.CollabService) *CollabHandler {
	return &CollabHandler{Service: service}
}

// SendRequestHandler allows an investor to send a collaboration request to an
// entrepreneur.
func (h *CollabHandler) SendRequestHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		logger.Log.Warn("Unauthorized attempt to send collaboration request")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		EntrepreneurID int64  `json:"entrepreneurId"`
		Message        string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode collaboration request payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	request, err := h.Service.CreateRequest(r.Context(), identity, body.EntrepreneurID, body.Message)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to send collaboration request")
		writeError(w, err)
		return
	}

	logger.Log.Infof("Investor %d sent a collaboration request to entrepreneur %d", identity.UserID, body.EntrepreneurID)
	respondJSON(w, http.StatusCreated, request)
}

// ListRequestsHandler returns collaboration requests, optionally filtered by
// entrepreneurId or investorId query parameters.
func (h *CollabHandler) ListRequestsHandler(w http.ResponseWriter, r *http.Request) {
	var (
		requests []models.CollaborationRequest
		err      error
	)

	switch {
	case r.URL.Query().Get("entrepreneurId") != "":
		var id int64
		id, err = strconv.ParseInt(r.URL.Query().Get("entrepreneurId"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid entrepreneurId", http.StatusBadRequest)
			return
		}
		requests, err = h.Service.GetRequestsForEntrepreneur(r.Context(), id)
	case r.URL.Query().Get("investorId") != "":
		var id int64
		id, err = strconv.ParseInt(r.URL.Query().Get("investorId"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid investorId", http.StatusBadRequest)
			return
		}
		requests, err = h.Service.GetRequestsForInvestor(r.Context(), id)
	default:
		requests, err = h.Service.ListRequests(r.Context())
	}

	if err != nil {
		logger.Log.WithError(err).Error("Failed to list collaboration requests")
		writeError(w, err)
		return
	}

	if requests == nil {
		requests = []models.CollaborationRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}

// GetRequestHandler returns a single collaboration request by id.
func (h *CollabHandler) GetRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	request, err := h.Service.GetRequest(r.Context(), id)
	if err != nil {
		logger.Log.WithField("request_id", id).WithError(err).Warn("Failed to get collaboration request")
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, request)
}

// RespondToRequestHandler allows the target entrepreneur to accept or reject
// a pending collaboration request.
func (h *CollabHandler) RespondToRequestHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		logger.Log.Warn("Unauthorized attempt to respond to a collaboration request")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Accept bool `json:"accept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode response body")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updated, err := h.Service.RespondToRequest(r.Context(), requestID, body.Accept)
	if err != nil {
		logger.Log.WithField("request_id", requestID).WithError(err).Warn("Failed to respond to collaboration request")
		writeError(w, err)
		return
	}

	logger.Log.Infof("User %d responded to collaboration request %d (accepted: %v)", claims.UserID, requestID, body.Accept)
	respondJSON(w, http.StatusOK, updated)
}

// DeleteRequestHandler removes a collaboration request. Exposed as a raw
// store operation; nothing in the product flow links to it.
func (h *CollabHandler) DeleteRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRequest(r.Context(), id); err != nil {
		logger.Log.WithField("request_id", id).WithError(err).Error("Failed to delete collaboration request")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
