package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/handlers"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/mocks"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWorkoutRouter(repo *mocks.WorkoutRepository) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/workouts", func(r chi.Router) {
		handlers.WorkoutRouter(r, services.NewWorkoutService(repo), handlers.RequireAuth(testJWTSecret))
	})
	return router
}

func tokenFor(t *testing.T, userID int) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogWorkoutRequiresAuth(t *testing.T) {
	router := newWorkoutRouter(new(mocks.WorkoutRepository))
	w := doRequest(t, router, http.MethodPost, "/workouts/", "", `{"exercise":"squat","sets":3,"reps":10,"weight":50}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateWorkoutOwnedByAnotherUserForbidden(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	repo.On("GetByID", mock.Anything, 5).
		Return(types.Workout{ID: 5, UserID: 1, Exercise: "squat"}, nil)

	router := newWorkoutRouter(repo)
	w := doRequest(t, router, http.MethodPut, "/workouts/5", tokenFor(t, 2), `{"exercise":"squat","sets":4,"reps":8,"weight":55}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateMissingWorkoutNotFound(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	repo.On("GetByID", mock.Anything, 99).
		Return(types.Workout{}, store.ErrNotFound)

	router := newWorkoutRouter(repo)
	w := doRequest(t, router, http.MethodPut, "/workouts/99", tokenFor(t, 1), `{"exercise":"squat","sets":4,"reps":8,"weight":55}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnauthenticatedUpdateOfMissingWorkoutReportsUnauthorized(t *testing.T) {
	// Authentication is checked before existence, so the caller is told
	// to authenticate rather than that the record is absent.
	repo := new(mocks.WorkoutRepository)

	router := newWorkoutRouter(repo)
	w := doRequest(t, router, http.MethodPut, "/workouts/99", "", `{"exercise":"squat","sets":4,"reps":8,"weight":55}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestLogWorkoutNegativeSetsRejected(t *testing.T) {
	repo := new(mocks.WorkoutRepository)

	router := newWorkoutRouter(repo)
	w := doRequest(t, router, http.MethodPost, "/workouts/", tokenFor(t, 1), `{"exercise":"squat","sets":-1,"reps":10,"weight":50}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
