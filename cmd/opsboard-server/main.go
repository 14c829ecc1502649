package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/opsboard/internal/config"
	"github.com/ehr/opsboard/internal/domain/chat"
	"github.com/ehr/opsboard/internal/domain/dashboard"
	"github.com/ehr/opsboard/internal/domain/inventory"
	"github.com/ehr/opsboard/internal/domain/patient"
	"github.com/ehr/opsboard/internal/domain/scheduling"
	"github.com/ehr/opsboard/internal/domain/task"
	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/db"
	"github.com/ehr/opsboard/internal/platform/middleware"
	"github.com/ehr/opsboard/internal/platform/relay"
	"github.com/ehr/opsboard/internal/platform/submission"
	"github.com/ehr/opsboard/internal/platform/telemetry"
	"github.com/ehr/opsboard/internal/platform/websocket"
	"github.com/ehr/opsboard/internal/seed"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsboard-server",
		Short: "Hospital operations board API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// connect opens the pool for the commands that require PostgreSQL.
func connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.UsesMemoryStore() {
		return nil, fmt.Errorf("DATABASE_URL is required for this command")
	}
	return db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := cmd.Context()
			pool, err := connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool, dir).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "", "Path to migrations directory (default MIGRATIONS_DIR)")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := cmd.Context()
			pool, err := connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, dir).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}
			printStatus(cmd, statuses)
			return nil
		},
	}
	statusCmd.Flags().String("dir", "", "Path to migrations directory (default MIGRATIONS_DIR)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func printStatus(cmd *cobra.Command, statuses []db.MigrationStatus) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
	fmt.Fprintln(out, "---------- ---------------------------------------- ---------- --------------------")
	for _, s := range statuses {
		status := "pending"
		appliedAt := ""
		if s.Applied {
			status = "applied"
			if s.AppliedAt != nil {
				appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
		}
		fmt.Fprintf(out, "%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo datasets into PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Env, os.Stdout)

			ctx := cmd.Context()
			pool, err := connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if _, err := seed.Load(ctx, pool, logger); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			return nil
		},
	}
}

func newLogger(env string, out *os.File) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// stores are the collections the services read and write.
type stores struct {
	patients     patient.Repository
	appointments scheduling.Repository
	inventory    inventory.Repository
	tasks        task.Repository
	chat         chat.Repository
}

func memoryStores() stores {
	return stores{
		patients:     patient.NewMemoryRepo(seed.Patients()...),
		appointments: scheduling.NewMemoryRepo(seed.Appointments()...),
		inventory:    inventory.NewMemoryRepo(seed.InventoryItems()...),
		tasks:        task.NewMemoryRepo(seed.Tasks()...),
		chat:         chat.NewMemoryRepo(seed.Channels(), seed.Messages()),
	}
}

func pgStores(q db.Querier) stores {
	return stores{
		patients:     patient.NewPatientRepoPG(q),
		appointments: scheduling.NewAppointmentRepoPG(q),
		inventory:    inventory.NewItemRepoPG(q),
		tasks:        task.NewTaskRepoPG(q),
		chat:         chat.NewChatRepoPG(q),
	}
}

// server holds the dependencies buildServer wires together.
type server struct {
	cfg      *config.Config
	logger   zerolog.Logger
	stores   stores
	registry *prometheus.Registry
	// pool is nil for the in-memory store.
	pool *pgxpool.Pool
	// publisher overrides the local hub for chat events, e.g. the Redis relay.
	publisher websocket.EventPublisher
	hub       *websocket.Hub
}

func buildServer(s server) *echo.Echo {
	cfg, logger := s.cfg, s.logger
	metrics := telemetry.NewMetrics(s.registry)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(metrics.Middleware())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	if s.pool != nil {
		pool := s.pool
		e.GET("/health/db", db.HealthHandler(pool, func() *db.PoolStats { return db.GetPoolStats(pool) }))
	}
	e.GET("/metrics", telemetry.Handler(s.registry))

	hub := s.hub
	if hub == nil {
		hub = websocket.NewHub(logger)
	}
	jwtCfg := auth.JWTConfig{
		Issuer:     cfg.AuthIssuer,
		Audience:   cfg.AuthAudience,
		SigningKey: []byte(cfg.AuthSigningKey),
	}

	wsHandler := websocket.NewHandler(hub, cfg.CORSOrigins)
	if !cfg.IsDev() {
		wsHandler.RequireToken(jwtCfg)
	}
	wsHandler.RegisterRoutes(e.Group(""))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":     "ok",
			"version":    version,
			"store":      storeName(cfg),
			"ws_clients": hub.ClientCount(),
		})
	})

	publisher := s.publisher
	if publisher == nil {
		publisher = hub
	}

	apiV1 := e.Group("/api/v1")
	if cfg.IsDev() {
		apiV1.Use(auth.DevAuthMiddleware(jwtCfg))
	} else {
		apiV1.Use(auth.JWTMiddleware(jwtCfg))
	}
	apiV1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	mode := cfg.Submission()
	patientSvc := patient.NewService(s.stores.patients,
		submission.WithObserver(submission.For(mode, "patient", logger, s.stores.patients.Create), metrics),
		cfg.Reference())
	scheduleSvc := scheduling.NewService(s.stores.appointments,
		submission.WithObserver(submission.For(mode, "appointment", logger, s.stores.appointments.Create), metrics),
		cfg.Schedule())
	inventorySvc := inventory.NewService(s.stores.inventory,
		submission.WithObserver(submission.For(mode, "inventory_item", logger, s.stores.inventory.Create), metrics),
		cfg.Reference())
	taskSvc := task.NewService(s.stores.tasks,
		submission.WithObserver(submission.For(mode, "task", logger, s.stores.tasks.Create), metrics))
	taskSvc.ObserveMoves(metrics)
	chatSvc := chat.NewService(s.stores.chat, publisher, logger)
	chatSvc.SetRecorder(metrics)

	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	scheduling.NewHandler(scheduleSvc).RegisterRoutes(apiV1)
	inventory.NewHandler(inventorySvc).RegisterRoutes(apiV1)
	task.NewHandler(taskSvc).RegisterRoutes(apiV1)
	chat.NewHandler(chatSvc).RegisterRoutes(apiV1)
	dashboard.NewHandler(dashboard.NewService(patientSvc, scheduleSvc, taskSvc, inventorySvc, chatSvc)).RegisterRoutes(apiV1)

	return e
}

func storeName(cfg *config.Config) string {
	if cfg.UsesMemoryStore() {
		return "memory"
	}
	return "postgres"
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Env, os.Stdout)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.IsDev() {
		logger.Warn().Msg("development mode: requests without a token are served as an admin user")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server{cfg: cfg, logger: logger, registry: registry, hub: websocket.NewHub(logger)}

	if cfg.UsesMemoryStore() {
		logger.Warn().Msg("DATABASE_URL not set, serving seed data from memory")
		srv.stores = memoryStores()
	} else {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")
		srv.pool = pool
		srv.stores = pgStores(pool)
	}

	if cfg.RedisURL != "" {
		client, err := relay.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		r := relay.New(client, relay.DefaultChannel, srv.hub, logger)
		if err := r.Start(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to start chat relay")
		}
		defer r.Close()
		srv.publisher = r
		logger.Info().Str("channel", relay.DefaultChannel).Msg("chat events relayed through redis")
	}

	e := buildServer(srv)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("store", storeName(cfg)).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
