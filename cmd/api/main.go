package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appcfg "copycraft/internal/config"
	pgRepo "copycraft/internal/infra/adapter/persistence/postgres"
	"copycraft/internal/infra/db"
	"copycraft/internal/infra/generator"
	"copycraft/internal/observability/metrics"
	"copycraft/internal/observability/tracing"
	"copycraft/internal/resilience/circuitbreaker"

	adminUC "copycraft/internal/usecase/admin"
	contentUC "copycraft/internal/usecase/content"

	hhttp "copycraft/internal/handler/http"
	hadmin "copycraft/internal/handler/http/admin"
	hauth "copycraft/internal/handler/http/auth"
	hcontent "copycraft/internal/handler/http/content"
	"copycraft/internal/handler/http/middleware"
	"copycraft/internal/handler/http/requestid"
	authservice "copycraft/internal/service/auth"

	_ "copycraft/docs" // swagger docs
)

// @title           CopyCraft API
// @version         1.0
// @description     AIコンテンツ生成バックエンドの REST API
// @description     認証、コンテンツの生成・管理、SEOスコアリング、管理者向け分析機能を提供します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	logger := initLogger()
	validateJWTSecret(logger)

	secCfg := loadSecurityConfig(logger)
	applySecurityConfig(logger, secCfg)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, secCfg, version)

	runServer(logger, database, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// セキュリティ: 最小32文字（256ビット）を強制
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	// セキュリティ: よくある弱い秘密鍵を拒否
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// loadSecurityConfig loads config/security.yaml. A missing file falls back
// to built-in defaults so local development works without configuration.
func loadSecurityConfig(logger *slog.Logger) *appcfg.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG_PATH")
	if path == "" {
		path = "config/security.yaml"
	}

	cfg, err := appcfg.LoadSecurityConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("security config not found, using defaults", slog.String("path", path))
			return nil
		}
		logger.Error("failed to load security config", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// applySecurityConfig pushes security.yaml settings into the auth layer.
func applySecurityConfig(logger *slog.Logger, cfg *appcfg.SecurityConfig) {
	if cfg == nil {
		return
	}
	hauth.UsePublicEndpoints(cfg.GetPublicEndpoints())
	if hours := cfg.GetJWTExpiryHours(); hours > 0 {
		hauth.TokenExpiry = time.Duration(hours) * time.Hour
	}
	logger.Info("security config applied",
		slog.String("auth_provider", cfg.GetAuthProvider()),
		slog.Int("min_password_length", cfg.GetMinPasswordLength()),
		slog.Int("jwt_expiry_hours", cfg.GetJWTExpiryHours()))
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// passwordPolicy builds the password policy from the security config,
// falling back to defaults when no configuration file is present.
func passwordPolicy(cfg *appcfg.SecurityConfig) authservice.PasswordPolicy {
	policy := authservice.PasswordPolicy{
		MinLength:     8,
		WeakPasswords: []string{"password", "12345678", "qwerty123", "admin123"},
	}
	if cfg != nil {
		policy.MinLength = cfg.GetMinPasswordLength()
		policy.WeakPasswords = cfg.GetWeakPasswords()
	}
	return policy
}

// initGenerator selects the text generation adapter based on GENERATOR_PROVIDER.
// Supported providers: "mistral" (default), "claude", "noop".
func initGenerator(logger *slog.Logger) generator.Generator {
	provider := os.Getenv("GENERATOR_PROVIDER")
	if provider == "" {
		provider = "mistral"
	}

	switch provider {
	case "mistral":
		cfg, err := generator.LoadMistralConfig()
		if err != nil {
			logger.Error("invalid generator configuration", slog.Any("error", err))
			os.Exit(1)
		}
		apiKey := os.Getenv("MISTRAL_API_KEY")
		if apiKey == "" {
			logger.Warn("MISTRAL_API_KEY not set, content generation will fail")
		}
		logger.Info("generator initialized",
			slog.String("provider", provider),
			slog.String("model", cfg.Model))
		return generator.NewMistral(apiKey, cfg)

	case "claude":
		cfg, err := generator.LoadClaudeConfig()
		if err != nil {
			logger.Error("invalid generator configuration", slog.Any("error", err))
			os.Exit(1)
		}
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			logger.Warn("ANTHROPIC_API_KEY not set, content generation will fail")
		}
		logger.Info("generator initialized",
			slog.String("provider", provider),
			slog.String("model", cfg.Model))
		return generator.NewClaude(apiKey, cfg)

	case "noop":
		logger.Warn("using noop generator, responses will echo the prompt")
		return generator.NewNoOp()

	default:
		logger.Error("unknown generator provider", slog.String("provider", provider))
		os.Exit(1)
		return nil
	}
}

// generatorConfigured reports whether the selected provider has an API key set.
func generatorConfigured() (string, bool) {
	provider := os.Getenv("GENERATOR_PROVIDER")
	if provider == "" {
		provider = "mistral"
	}
	switch provider {
	case "claude":
		return provider, os.Getenv("ANTHROPIC_API_KEY") != ""
	case "noop":
		return provider, true
	default:
		return provider, os.Getenv("MISTRAL_API_KEY") != ""
	}
}

// setupServer wires repositories, services and routes and returns the root handler.
func setupServer(logger *slog.Logger, database *sql.DB, secCfg *appcfg.SecurityConfig, version string) http.Handler {
	// DB アクセスはサーキットブレーカー経由
	dbBreaker := circuitbreaker.NewDBCircuitBreaker(database)
	contentRepo := pgRepo.NewContentRepo(dbBreaker)
	userRepo := pgRepo.NewUserRepo(dbBreaker)

	authSvc := authservice.NewAuthService(userRepo, passwordPolicy(secCfg))
	contentSvc := &contentUC.Service{Repo: contentRepo, Generator: initGenerator(logger)}
	adminSvc := &adminUC.Service{Contents: contentRepo, Users: userRepo}

	mux := http.NewServeMux()

	// ヘルスチェックエンドポイント（認証不要）
	genProvider, genConfigured := generatorConfigured()
	mux.Handle("/health", &hhttp.HealthHandler{
		DB:                  database,
		Version:             version,
		GeneratorProvider:   genProvider,
		GeneratorConfigured: genConfigured,
	})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要）
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// アプリケーションルート。認可は各ハンドラパッケージ側で適用される
	hauth.Register(mux, authSvc)
	hcontent.Register(mux, contentSvc)
	hadmin.Register(mux, adminSvc)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the shared middleware chain.
// Order (outermost first): CORS -> Request ID -> Recovery -> Logging ->
// Input Validation -> Body Limit -> Timeout -> Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	corsConfig.Logger = logger

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(60 * time.Second)(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(*corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, database *sql.DB, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 接続プール統計を定期的にメトリクスへ反映
	go reportDBStats(ctx, database)

	// 認証エンドポイントのレートリミッタからアイドルIPを定期削除
	go hauth.StartRateLimitCleanup(ctx, 5*time.Minute, 15*time.Minute)

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", ":8080"),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// reportDBStats periodically exports connection pool statistics as metrics.
func reportDBStats(ctx context.Context, database *sql.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := database.Stats()
			metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
		}
	}
}
