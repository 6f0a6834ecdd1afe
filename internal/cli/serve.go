package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/moshiurrahman/portfolio-api/internal/api/handlers"
	"github.com/moshiurrahman/portfolio-api/internal/config"
	"github.com/moshiurrahman/portfolio-api/internal/database"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/openrouter"
	"github.com/moshiurrahman/portfolio-api/internal/profile"
	"github.com/moshiurrahman/portfolio-api/internal/repository"
	"github.com/moshiurrahman/portfolio-api/internal/server"
	"github.com/moshiurrahman/portfolio-api/internal/service"
	"github.com/moshiurrahman/portfolio-api/internal/telemetry"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the portfolio API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
	cmd.Flags().Bool("no-migrate", false, "Skip automatic database migrations on startup")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              dsn,
			Environment:      environment,
			TracesSampleRate: sampleRate,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	if portFlag, _ := cmd.Flags().GetString("port"); portFlag != "" {
		cfg.Port = portFlag
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	log.Println("connected to database")

	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if !noMigrate {
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	doc, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile document: %w", err)
	}
	prompts := service.NewPromptSet(doc)

	var llm service.ChatCompleter
	if cfg.HasOpenRouter() {
		client, err := openrouter.NewClient(openrouter.Config{
			APIKey:   cfg.OpenRouterAPIKey,
			BaseURL:  cfg.OpenRouterBaseURL,
			Referer:  cfg.AppReferer,
			AppTitle: cfg.AppTitle,
		})
		if err != nil {
			return fmt.Errorf("failed to create openrouter client: %w", err)
		}
		llm = client
		log.Println("openrouter client ready")
	} else {
		llm = &unavailableCompleter{}
		log.Println("OPENROUTER_API_KEY not set, assistant endpoints will fail")
	}

	chatRepo := repository.NewChatRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	taxonomyRepo := repository.NewTaxonomyRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	visitRepo := repository.NewVisitRepository(pool)
	commandRepo := repository.NewCommandRepository(pool)

	generator := service.NewResponseGenerator(llm, prompts, service.GeneratorConfig{
		Model:         cfg.ChatModel,
		FallbackModel: cfg.FallbackModel,
	})
	titles := service.NewTitleGenerator(llm, cfg.ChatModel, service.UTCClock{})

	chatSvc := service.NewChatService(chatRepo, generator, titles)
	blogSvc := service.NewBlogService(blogRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	commentSvc := service.NewCommentService(commentRepo)
	visitSvc := service.NewVisitService(visitRepo)
	commandSvc := service.NewCommandService(commandRepo, llm, prompts, cfg.CommandModel)

	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		ChatHandler:     handlers.NewChatHandler(chatSvc),
		BlogHandler:     handlers.NewBlogHandler(blogSvc),
		ReviewHandler:   handlers.NewReviewHandler(reviewSvc),
		TaxonomyHandler: handlers.NewTaxonomyHandler(taxonomyRepo),
		CommentHandler:  handlers.NewCommentHandler(commentSvc),
		VisitHandler:    handlers.NewVisitHandler(visitSvc),
		CommandHandler:  handlers.NewCommandHandler(commandSvc),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// unavailableCompleter stands in when no API key is configured.
type unavailableCompleter struct{}

func (unavailableCompleter) Complete(ctx context.Context, req openrouter.CompletionRequest) (string, error) {
	return "", domain.NewDomainErrorWithCause(domain.ErrCodeAuthFailed, domain.ErrModelAuthFailed.Message, openrouter.ErrNoAPIKey)
}

func runMigrations(databaseURL string) error {
	// Create a sql.DB connection for golang-migrate
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if err == migrate.ErrNilVersion {
		log.Println("migrations: database is up to date (no migrations applied)")
	} else if dirty {
		return fmt.Errorf("migration version %d is dirty - manual intervention required", version)
	} else if err == migrate.ErrNoChange {
		log.Printf("migrations: database is up to date (version %d)", version)
	} else {
		log.Printf("migrations: applied successfully (version %d)", version)
	}

	return nil
}
