package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhhquann88/DoAn-sub001/config"
	_ "github.com/minhhquann88/DoAn-sub001/docs" // Swagger docs
	adminctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/admin"
	instructorctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/instructor"
	"github.com/minhhquann88/DoAn-sub001/internal/controller/middleware"
	userctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/user"
	"github.com/minhhquann88/DoAn-sub001/internal/database"
	"github.com/minhhquann88/DoAn-sub001/internal/logger"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/minhhquann88/DoAn-sub001/internal/server"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Assessment Engine API
// @version 1.0
// @description Tests, submissions, auto and manual grading, and per-test statistics.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT.
func main() {
	// Console output until the config decides level and format.
	logger.Init("info", true)

	app := fx.New(
		fx.NopLogger,

		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			server.NewGinEngine,
			middleware.NewAuthenticator,
			NewStatsCache,
		),

		fx.Provide(
			repository.NewCourseRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewResultAnswerRepository,
		),

		fx.Provide(
			service.NewAccessPolicy,
			service.NewAutoGrader,
			service.NewScoreConverterService,
			NewEssayAssistant,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewTestSubmissionService,
			service.NewGradingService,
			service.NewStatisticsService,
		),

		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			instructorctrl.NewGradingController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(database.Migrate),
		fx.Invoke(server.RegisterRoutes),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

// NewStatsCache returns the Redis cache when REDIS_ADDR is set and a no-op cache otherwise.
func NewStatsCache(lc fx.Lifecycle, cfg *config.Config) service.StatsCache {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR is not set. Statistics are computed on every request.")
		return service.NewNoopStatsCache()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// The cache degrades to misses; statistics still work.
				log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis is not reachable")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return service.NewRedisStatsCache(client, cfg.Redis.StatsCacheTTL)
}

// NewEssayAssistant builds the Gemini-backed assistant and closes its client on shutdown.
func NewEssayAssistant(lc fx.Lifecycle, cfg *config.Config) (service.EssayAssistant, error) {
	assistant, err := service.NewEssayAssistant(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := assistant.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return assistant, nil
}

func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, db *gorm.DB) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
