package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/kid-econ/progress-server/internal/handlers"
	"github.com/kid-econ/progress-server/internal/jwt"
	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/middlewares"
	"github.com/kid-econ/progress-server/internal/repositories"
	"github.com/kid-econ/progress-server/internal/services"
	"github.com/kid-econ/progress-server/internal/storage"

	_ "github.com/kid-econ/progress-server/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// maxBodyBytes caps request bodies at 1 MiB, matching the original client
// contract for progress uploads.
const maxBodyBytes = 1 << 20

// @title kid-econ progress API
// @version 1.0.0
// @description Account and progress-sync backend for the kid-econ learning game
// @host localhost:8787
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, dataPath, logLevel, jwtSecret, jwtExpHour, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), appHost, appPort, dataPath, logLevel, jwtSecret, jwtExpHour); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, storage, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, dataPath, logLevel string,
	jwtSecretKey string, jwtExpHour int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "")
	appPort = getEnv("APP_PORT", "8787")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	dataPath = getEnv("DATA_PATH", "data/db.json")

	// JWT config. The default secret is an insecure placeholder and must
	// be overridden in any real deployment.
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "dev-only-change-me")
	if jwtExpHour, err = strconv.Atoi(getEnv("JWT_EXP_HOUR", "720")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, services, and HTTP server. It sets
// up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, dataPath, logLevel string,
	jwtSecretKey string, jwtExpHour int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize storage. Loading once up front creates the document file
	// if missing and makes corrupt storage fail the process at startup.
	store := storage.NewFileStore(dataPath)
	if _, err := store.Load(ctx); err != nil {
		logger.Log.Fatalw("failed to open data file", "path", dataPath, "error", err)
	}
	logger.Log.Infof("Data file ready at %s", dataPath)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpHour)*time.Hour),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(store)
	userWriteRepo := repositories.NewUserWriteRepository(store)
	progressReadRepo := repositories.NewProgressReadRepository(store)
	progressWriteRepo := repositories.NewProgressWriteRepository(store)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	progressService := services.NewProgressService(progressReadRepo, progressWriteRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	getProgressHandler := handlers.NewGetProgressHandler(progressService)
	putProgressHandler := handlers.NewPutProgressHandler(progressService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(limitBody)

	// Public routes
	r.Get("/health", healthHandler)
	r.Post("/auth/signup", signupHandler)
	r.Post("/auth/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/progress", getProgressHandler)
		r.Put("/progress", putProgressHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%s/swagger/doc.json", appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// limitBody caps the request body size before JSON decoding.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
