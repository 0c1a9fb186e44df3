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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/articleboard/articleboard/internal/flash"
	"github.com/articleboard/articleboard/internal/handlers"
	appjwt "github.com/articleboard/articleboard/internal/jwt"
	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/middlewares"
	"github.com/articleboard/articleboard/internal/repositories"
	"github.com/articleboard/articleboard/internal/services"
	"github.com/articleboard/articleboard/internal/sessions"
	"github.com/articleboard/articleboard/internal/templates"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond, flashExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond, flashExpSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and session configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecret string, jwtExpSecond, flashExpSecond int,
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
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "articleboard")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config (empty brokers disable event publishing)
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "content-events")

	// Session config
	jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	if flashExpSecond, err = strconv.Atoi(getEnv("FLASH_EXP_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecret string, jwtExpSecond, flashExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for content events, nil when no brokers are configured
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Session and flash plumbing
	tokens := appjwt.New(
		appjwt.WithSecretKey(jwtSecret),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)
	flashStore := flash.New(rdb, time.Duration(flashExpSecond)*time.Second)
	sess := sessions.New(tokens, flashStore)

	// Templates
	renderer, err := templates.New()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	articleReadRepo := repositories.NewArticleReadRepository(db, txGetter)
	articleWriteRepo := repositories.NewArticleWriteRepository(db, txGetter)
	commentReadRepo := repositories.NewCommentReadRepository(db, txGetter)
	commentWriteRepo := repositories.NewCommentWriteRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	articleService := services.NewArticleService(articleReadRepo, articleWriteRepo, kafkaWriter)
	commentService := services.NewCommentService(commentReadRepo, commentWriteRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.NotFound(handlers.NewNotFoundHandler(renderer, sess))

	// Public routes
	r.Get("/", handlers.NewHomeHandler(renderer, sess))
	r.Get("/about", handlers.NewAboutHandler(renderer, sess))
	r.Get("/articles", handlers.NewArticlesHandler(renderer, sess, articleService))
	articleHandler := handlers.NewArticleHandler(renderer, sess, articleService, commentService)
	r.Get("/article/{id}", articleHandler)
	r.Post("/article/{id}", articleHandler)
	registerHandler := handlers.NewRegisterHandler(renderer, sess, authService)
	r.Get("/register", registerHandler)
	r.Post("/register", registerHandler)
	loginHandler := handlers.NewLoginHandler(renderer, sess, authService)
	r.Get("/login", loginHandler)
	r.Post("/login", loginHandler)

	// Protected routes behind the session guard, with a per-request
	// transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(sess))
		r.Use(middlewares.TxMiddleware(db))

		r.Get("/logout", handlers.NewLogoutHandler(sess))
		r.Get("/dashboard", handlers.NewDashboardHandler(renderer, sess, articleService))
		r.Post("/submit_comment/{id}", handlers.NewSubmitCommentHandler(renderer, sess, articleService, commentService, commentService))
		addHandler := handlers.NewAddArticleHandler(renderer, sess, articleService)
		r.Get("/add_article", addHandler)
		r.Post("/add_article", addHandler)
		editHandler := handlers.NewEditArticleHandler(renderer, sess, articleService)
		r.Get("/edit_article/{id}", editHandler)
		r.Post("/edit_article/{id}", editHandler)
		deleteHandler := handlers.NewDeleteArticleHandler(sess, articleService)
		r.Get("/delete_article/{id}", deleteHandler)
		r.Post("/delete_article/{id}", deleteHandler)
		r.Get("/upload", handlers.NewUploadHandler(renderer, sess))
		storeHandler := handlers.NewStoreHandler(sess, articleService)
		r.Get("/store", storeHandler)
		r.Post("/store", storeHandler)
	})

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
