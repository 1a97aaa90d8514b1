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

const dateLayout = "2006-01-02"

// WorkoutHandler provides HTTP handlers for workout logging.
type WorkoutHandler struct {
	workoutService *services.WorkoutService
}

func NewWorkoutHandler(workoutService *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// WorkoutRouter registers workout routes. All routes require auth.
func WorkoutRouter(r chi.Router, workoutService *services.WorkoutService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewWorkoutHandler(workoutService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListWorkouts)
	r.Post("/", handler.LogWorkout)
	r.Route("/{workoutID}", func(r chi.Router) {
		r.Get("/", handler.GetWorkout)
		r.Put("/", handler.UpdateWorkout)
		r.Delete("/", handler.DeleteWorkout)
	})
}

// WorkoutRequest is the JSON payload for logging or editing a workout.
type WorkoutRequest struct {
	// Date is optional, formatted YYYY-MM-DD. Defaults to today.
	Date     string  `json:"date"`
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
}

func (req WorkoutRequest) toWorkout() (types.Workout, error) {
	workout := types.Workout{
		Exercise: strings.TrimSpace(req.Exercise),
		Sets:     req.Sets,
		Reps:     req.Reps,
		Weight:   req.Weight,
	}
	if raw := strings.TrimSpace(req.Date); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return types.Workout{}, errors.New("invalid date, expected YYYY-MM-DD")
		}
		workout.Date = date
	}
	return workout, nil
}

func (h *WorkoutHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	workouts, err := h.workoutService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list workouts")
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

func (h *WorkoutHandler) LogWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	workout, err := req.toWorkout()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.workoutService.Log(r.Context(), userID, workout)
	if err != nil {
		writeServiceError(w, err, "failed to log workout")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *WorkoutHandler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "workoutID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.workoutService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err, "failed to fetch workout")
		return
	}

	writeJSON(w, http.StatusOK, workout)
}

func (h *WorkoutHandler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "workoutID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	workout, err := req.toWorkout()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	workout.ID = id

	updated, err := h.workoutService.Update(r.Context(), userID, workout)
	if err != nil {
		writeServiceError(w, err, "failed to update workout")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *WorkoutHandler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "workoutID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.workoutService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "failed to delete workout")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
