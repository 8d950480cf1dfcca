package handler

import (
	"net/http"

	"github.com/2bndy5/mk-pass/internal/middleware"
	"github.com/2bndy5/mk-pass/internal/model"
	"github.com/2bndy5/mk-pass/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProfileHandler handles HTTP requests for saved requirement profiles.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleListProfiles handles GET /api/v1/profiles requests.
func (h *ProfileHandler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	profiles, err := h.service.ListProfiles(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// HandleCreateProfile handles POST /api/v1/profiles requests.
func (h *ProfileHandler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ProfileRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.CreateProfile(r.Context(), accountID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdateProfile handles PUT /api/v1/profiles/{profile_id} requests.
func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, profileID, ok := profileParams(w, r)
	if !ok {
		return
	}

	var req model.ProfileRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), accountID, profileID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteProfile handles DELETE /api/v1/profiles/{profile_id} requests.
func (h *ProfileHandler) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	accountID, profileID, ok := profileParams(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(r.Context(), accountID, profileID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /api/v1/profiles/{profile_id}/generate requests.
func (h *ProfileHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	accountID, profileID, ok := profileParams(w, r)
	if !ok {
		return
	}

	var req model.ProfileGenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.GenerateFromProfile(r.Context(), accountID, profileID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// profileParams extracts the account and profile IDs, writing an error
// response when either is missing or malformed.
func profileParams(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return 0, "", false
	}

	profileID := chi.URLParam(r, "profile_id")
	if err := uuid.Validate(profileID); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid profile id"))
		return 0, "", false
	}

	return accountID, profileID, true
}
