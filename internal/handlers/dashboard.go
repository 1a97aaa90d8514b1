package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
)

// DashboardHandler serves the two role-gated landing views.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardRouter registers dashboard routes. All routes require auth;
// each dashboard additionally rejects the other role.
func DashboardRouter(r chi.Router, dashboardService *services.DashboardService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewDashboardHandler(dashboardService)

	r.Use(authMiddleware)
	r.Get("/gym-goer", handler.GymGoerDashboard)
	r.Get("/trainer", handler.TrainerDashboard)
}

func (h *DashboardHandler) GymGoerDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dashboard, err := h.dashboardService.GymGoer(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to load dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

func (h *DashboardHandler) TrainerDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dashboard, err := h.dashboardService.Trainer(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to load dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
