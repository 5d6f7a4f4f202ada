package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"marketing-poster-server/modules/caption"
	"marketing-poster-server/modules/common/config"
	"marketing-poster-server/modules/common/gemini"
	"marketing-poster-server/modules/common/logger"
	"marketing-poster-server/modules/common/middleware"
	"marketing-poster-server/modules/common/redis"
	"marketing-poster-server/modules/common/stats"
	"marketing-poster-server/modules/health"
	"marketing-poster-server/modules/poster"
)

const statsKey = "marketing-poster-server:stats"

// routeRegistrar - every module handler exposes its routes this way
type routeRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

// newRouter - middleware wraps the mux so 404/405 and preflight requests
// still get a request id, CORS headers and an access log line.
func newRouter(log zerolog.Logger, handlers ...routeRegistrar) http.Handler {
	r := mux.NewRouter()
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return middleware.RequestID(middleware.Logger(log)(middleware.CORS(r)))
}

// newRecorder - Redis counters when configured, in-memory otherwise
func newRecorder(ctx context.Context, cfg *config.Config, log zerolog.Logger) stats.Recorder {
	if !cfg.RedisEnabled() {
		log.Info().Msg("📊 Redis not configured, keeping generation counters in memory")
		return stats.NewMemoryRecorder()
	}

	rdb, err := redis.Connect(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Redis unavailable, keeping generation counters in memory")
		return stats.NewMemoryRecorder()
	}
	log.Info().Str("addr", cfg.GetRedisAddr()).Bool("tls", cfg.RedisUseTLS).Msg("✅ Redis connected")
	return stats.NewRedisRecorder(rdb, statsKey)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := logger.New("production")
		bootLog.Fatal().Err(err).Msg("❌ Failed to load config")
	}
	log := logger.New(cfg.AppEnv)

	ctx := context.Background()

	client, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to create Gemini client")
	}
	log.Info().
		Str("backend", cfg.GeminiBackend).
		Str("poster_model", cfg.PosterModel).
		Str("caption_model", cfg.CaptionModel).
		Msg("✅ Gemini client initialized")

	recorder := newRecorder(ctx, cfg, log)

	router := newRouter(log,
		health.NewHandler(recorder, log),
		poster.NewHandler(poster.NewService(client.Models, cfg.PosterModel, log), recorder, log),
		caption.NewHandler(caption.NewService(client.Models, cfg.CaptionModel, log), recorder, log),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Msgf("🚀 Marketing poster server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPWriteTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server")
	}
	log.Info().Msg("server stopped")
}
