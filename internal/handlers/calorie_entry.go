package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// CalorieEntryHandler provides HTTP handlers for calorie tracking.
type CalorieEntryHandler struct {
	calorieService *services.CalorieEntryService
}

func NewCalorieEntryHandler(calorieService *services.CalorieEntryService) *CalorieEntryHandler {
	return &CalorieEntryHandler{calorieService: calorieService}
}

// CalorieEntryRouter registers calorie routes. All routes require auth.
func CalorieEntryRouter(r chi.Router, calorieService *services.CalorieEntryService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewCalorieEntryHandler(calorieService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListEntries)
	r.Post("/", handler.TrackEntry)
	r.Route("/{entryID}", func(r chi.Router) {
		r.Get("/", handler.GetEntry)
		r.Put("/", handler.UpdateEntry)
		r.Delete("/", handler.DeleteEntry)
	})
}

// CalorieEntryRequest is the JSON payload for tracking or editing a meal.
type CalorieEntryRequest struct {
	// EntryTime is optional, RFC 3339. Defaults to now.
	EntryTime string  `json:"entry_time"`
	Meal      string  `json:"meal"`
	Calories  float64 `json:"calories"`
}

func (req CalorieEntryRequest) toEntry() (types.CalorieEntry, error) {
	entry := types.CalorieEntry{
		Meal:     strings.TrimSpace(req.Meal),
		Calories: req.Calories,
	}
	if raw := strings.TrimSpace(req.EntryTime); raw != "" {
		entryTime, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return types.CalorieEntry{}, errors.New("invalid entry_time, expected RFC 3339")
		}
		entry.EntryTime = entryTime.UTC()
	}
	return entry, nil
}

func (h *CalorieEntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := h.calorieService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *CalorieEntryHandler) TrackEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CalorieEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	entry, err := req.toEntry()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.calorieService.Track(r.Context(), userID, entry)
	if err != nil {
		writeServiceError(w, err, "failed to track calories")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *CalorieEntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "entryID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.calorieService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err, "failed to fetch entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *CalorieEntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "entryID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CalorieEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	entry, err := req.toEntry()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entry.ID = id

	updated, err := h.calorieService.Update(r.Context(), userID, entry)
	if err != nil {
		writeServiceError(w, err, "failed to update entry")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *CalorieEntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "entryID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.calorieService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "failed to delete entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
