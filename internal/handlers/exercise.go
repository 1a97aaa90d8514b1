package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

const (
	maxMultipartMemory = 16 << 20
	maxImageBytes      = 8 << 20

	formFieldName        = "name"
	formFieldDescription = "description"
	formFieldMuscleGroup = "muscle_group"
	formFieldDifficulty  = "difficulty"
	formFieldImage       = "image"
)

// ExerciseHandler provides HTTP handlers for the exercise catalog.
type ExerciseHandler struct {
	exerciseService  *services.ExerciseService
	favouriteService *services.FavouriteService
	reviewService    *services.ReviewService
}

func NewExerciseHandler(
	exerciseService *services.ExerciseService,
	favouriteService *services.FavouriteService,
	reviewService *services.ReviewService,
) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService:  exerciseService,
		favouriteService: favouriteService,
		reviewService:    reviewService,
	}
}

// ExerciseRouter registers catalog routes. Browsing is public; authoring
// exercises, toggling favourites, and submitting reviews require auth.
func ExerciseRouter(
	r chi.Router,
	exerciseService *services.ExerciseService,
	favouriteService *services.FavouriteService,
	reviewService *services.ReviewService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewExerciseHandler(exerciseService, favouriteService, reviewService)

	r.Get("/", handler.ListExercises)
	r.With(authMiddleware).Post("/", handler.CreateExercise)
	r.Route("/{exerciseID}", func(r chi.Router) {
		r.Get("/", handler.GetExercise)
		r.Get("/image", handler.GetExerciseImage)
		r.Get("/reviews", handler.ListReviews)
		r.With(authMiddleware).Post("/reviews", handler.SubmitReview)
		r.With(authMiddleware).Post("/favourite", handler.ToggleFavourite)
	})
}

// ExerciseDetailResponse is the catalog detail payload.
type ExerciseDetailResponse struct {
	Exercise types.Exercise `json:"exercise"`
	Reviews  []types.Review `json:"reviews"`
}

// ToggleFavouriteResponse reports the favourite state after a toggle.
type ToggleFavouriteResponse struct {
	Favourited bool `json:"favourited"`
}

func (h *ExerciseHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exerciseService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list exercises")
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exercise, err := h.exerciseService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to fetch exercise")
		return
	}
	reviews, err := h.reviewService.ListForExercise(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}

	writeJSON(w, http.StatusOK, ExerciseDetailResponse{Exercise: exercise, Reviews: reviews})
}

// CreateExercise accepts a multipart form so the trainer can attach an
// optional demo image alongside the catalog fields.
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	exercise, image, err := parseExerciseForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.exerciseService.Create(r.Context(), userID, exercise, image)
	if err != nil {
		writeServiceError(w, err, "failed to create exercise")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ExerciseHandler) GetExerciseImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reader, err := h.exerciseService.OpenImage(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to fetch image")
		return
	}
	defer reader.Close()

	if _, err := io.Copy(w, reader); err != nil {
		// Headers are already out; nothing left to report to the client.
		return
	}
}

func (h *ExerciseHandler) ToggleFavourite(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	favourited, err := h.favouriteService.Toggle(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err, "failed to toggle favourite")
		return
	}

	writeJSON(w, http.StatusOK, ToggleFavouriteResponse{Favourited: favourited})
}

func (h *ExerciseHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.reviewService.ListForExercise(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// ReviewRequest is the JSON payload for submitting a review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ExerciseHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	review, err := h.reviewService.Submit(r.Context(), userID, id, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, err, "failed to submit review")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func parseExerciseForm(r *http.Request) (types.Exercise, *services.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return types.Exercise{}, nil, errors.New("invalid multipart form")
	}

	exercise := types.Exercise{
		Name:        strings.TrimSpace(r.FormValue(formFieldName)),
		Description: strings.TrimSpace(r.FormValue(formFieldDescription)),
		MuscleGroup: strings.TrimSpace(r.FormValue(formFieldMuscleGroup)),
		Difficulty:  strings.TrimSpace(r.FormValue(formFieldDifficulty)),
	}

	image, err := parseImageFile(r.MultipartForm)
	if err != nil {
		return types.Exercise{}, nil, err
	}
	return exercise, image, nil
}

func parseImageFile(form *multipart.Form) (*services.ImageUpload, error) {
	if form == nil {
		return nil, nil
	}

	files := form.File[formFieldImage]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > 1 {
		return nil, errors.New("only one image file is allowed")
	}

	fileHeader := files[0]
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	data, err := readFileLimited(file, maxImageBytes)
	_ = file.Close()
	if err != nil {
		return nil, err
	}

	return &services.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readFileLimited(reader io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(reader, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("uploaded file too large")
	}
	return data, nil
}
