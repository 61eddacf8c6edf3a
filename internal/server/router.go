package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/minhhquann88/DoAn-sub001/config"
	"github.com/minhhquann88/DoAn-sub001/internal/controller"
	adminctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/admin"
	instructorctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/instructor"
	"github.com/minhhquann88/DoAn-sub001/internal/controller/middleware"
	userctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/user"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	controller.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())

	// Gin request log goes through zerolog; the formatter output itself is discarded.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys["request_id"].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowAll := len(origins) == 1 && origins[0] == "*"
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutes mounts every API route under /api/v1 plus the health check.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	auth *middleware.Authenticator,
	userTestCtrl *userctrl.UserTestController,
	adminTestCtrl *adminctrl.AdminTestController,
	gradingCtrl *instructorctrl.GradingController,
) {
	router.GET("/healthz", healthHandler(db))

	api := router.Group("/api/v1", auth.RequireAuth())
	userTestCtrl.RegisterRoutes(api)

	instructorGroup := api.Group("/instructor", middleware.RequireRole(service.RoleInstructor))
	adminTestCtrl.RegisterRoutes(instructorGroup)
	gradingCtrl.RegisterRoutes(instructorGroup)
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(pingCtx)
		}
		if err != nil {
			log.Error().Err(err).Msg("Health check failed")
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
