package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
)

// FavouriteHandler lists the caller's favourited exercises.
type FavouriteHandler struct {
	favouriteService *services.FavouriteService
}

func NewFavouriteHandler(favouriteService *services.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{favouriteService: favouriteService}
}

// FavouriteRouter registers favourite routes. All routes require auth.
func FavouriteRouter(r chi.Router, favouriteService *services.FavouriteService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewFavouriteHandler(favouriteService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListFavourites)
}

func (h *FavouriteHandler) ListFavourites(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	exercises, err := h.favouriteService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list favourites")
		return
	}

	writeJSON(w, http.StatusOK, exercises)
}
