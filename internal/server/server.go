package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/config"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/db"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/handlers"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/storage"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	images, err := storage.NewFromConfig(ctx, cfg.Storage)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	workoutRepo := store.NewWorkoutRepository(dbConn)
	calorieRepo := store.NewCalorieEntryRepository(dbConn)
	exerciseRepo := store.NewExerciseRepository(dbConn)
	favouriteRepo := store.NewFavouriteRepository(dbConn)
	reviewRepo := store.NewReviewRepository(dbConn)

	authService := services.NewAuthService(userRepo)
	workoutService := services.NewWorkoutService(workoutRepo)
	calorieService := services.NewCalorieEntryService(calorieRepo)
	exerciseService := services.NewExerciseService(exerciseRepo, userRepo, images)
	favouriteService := services.NewFavouriteService(favouriteRepo, exerciseRepo)
	reviewService := services.NewReviewService(reviewRepo, exerciseRepo)
	dashboardService := services.NewDashboardService(userRepo, workoutRepo, calorieRepo, exerciseRepo)

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, authService, jwtSecret)
	})
	router.Route("/workouts", func(r chi.Router) {
		handlers.WorkoutRouter(r, workoutService, authMiddleware)
	})
	router.Route("/calories", func(r chi.Router) {
		handlers.CalorieEntryRouter(r, calorieService, authMiddleware)
	})
	router.Route("/exercises", func(r chi.Router) {
		handlers.ExerciseRouter(r, exerciseService, favouriteService, reviewService, authMiddleware)
	})
	router.Route("/favourites", func(r chi.Router) {
		handlers.FavouriteRouter(r, favouriteService, authMiddleware)
	})
	router.Route("/dashboard", func(r chi.Router) {
		handlers.DashboardRouter(r, dashboardService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
