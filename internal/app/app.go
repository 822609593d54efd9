package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/fitplanpro/workout-backend/internal/repository"
	appvalidator "github.com/fitplanpro/workout-backend/internal/validator"
	"github.com/fitplanpro/workout-backend/internal/vcs"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	validator *validator.Validate

	userRepo     domain.UserRepository
	exerciseRepo domain.ExerciseRepository
	workoutRepo  domain.WorkoutRepository
	logRepo      domain.WorkoutLogRepository
	goalRepo     domain.GoalRepository
	progressRepo domain.ProgressRepository
}

// New wires an Application from an already established database pool. Run
// handles flag parsing and pool construction for the server binary; tests
// call New directly.
func New(cfg Config, logger *slog.Logger, db *pgxpool.Pool) *Application {
	return &Application{
		config:       cfg,
		logger:       logger,
		db:           db,
		validator:    appvalidator.NewValidator(),
		userRepo:     repository.NewPostgresUserRepository(db),
		exerciseRepo: repository.NewPostgresExerciseRepository(db),
		workoutRepo:  repository.NewPostgresWorkoutRepository(db),
		logRepo:      repository.NewPostgresWorkoutLogRepository(db),
		goalRepo:     repository.NewPostgresGoalRepository(db),
		progressRepo: repository.NewPostgresProgressRepository(db),
	}
}

func Run() error {
	var cfg Config
	var corsOrigins string

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN (falls back to POSTGRES_* env vars)")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&corsOrigins, "cors-origins", "http://localhost:3000", "Comma-separated CORS allowed origins")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL (telemetry disabled when empty)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	cfg.CorsOrigins = strings.Split(corsOrigins, ",")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := cfg.ResolveDSN()
	if err != nil {
		logger.Error("failed to resolve database DSN", "error", err)
		return err
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return err
	}
	defer db.Close()

	logger.Info("database connection established")

	app := New(cfg, logger, db)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
