package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/aoe-ads/internal/catalog"
	"github.com/xavierca1/aoe-ads/internal/config"
	"github.com/xavierca1/aoe-ads/internal/infra/database"
	"github.com/xavierca1/aoe-ads/internal/infra/http/handlers"
	"github.com/xavierca1/aoe-ads/internal/infra/http/middleware"
	"github.com/xavierca1/aoe-ads/internal/infra/integration/gemini"
	"github.com/xavierca1/aoe-ads/internal/infra/mail"
	"github.com/xavierca1/aoe-ads/internal/usecase"
)

func main() {
	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(os.Stdout).Level(parseLogLevel(cfg.LogLevel))

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	interactionRepo := database.NewInteractionRepository(db)

	// 2. Adapters externos
	ttsClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiURL, cfg.GeminiVoice)
	mailSender := mail.NewEmailSender(cfg.EmailHost, cfg.EmailPort, cfg.EmailAddress, cfg.EmailPassword)
	if !mailSender.Enabled {
		log.Warn().Msg("SMTP credentials not fully configured; email sending is disabled")
	}

	// 3. Catálogo estático, montado uma vez
	cat := catalog.Default()

	// 4. UseCases
	sendAdUC := usecase.NewSendAdEmailUseCase(leadRepo, interactionRepo, mailSender, cat, cfg.AdBaseURL)
	renderAdUC := usecase.NewRenderAdPageUseCase(leadRepo, ttsClient, cat)

	// 5. Handlers
	adHandler := handlers.NewAdHandler(sendAdUC, renderAdUC)
	healthHandler := handlers.NewHealthHandler(db, mailSender.Enabled, cfg.GeminiAPIKey != "")

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/send-ad-email", adHandler.HandleSendAdEmail)
	r.Get("/ad", adHandler.HandleAdPage)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("personalized ad service listening")

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func parseLogLevel(v string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
