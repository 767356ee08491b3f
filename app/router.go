// Package app wires the HTTP surface together
package app

import (
	"bitwise74/notes-api/app/auth"
	"bitwise74/notes-api/app/notes"
	"bitwise74/notes-api/app/root"
	"bitwise74/notes-api/db"
	"bitwise74/notes-api/internal"
	"bitwise74/notes-api/internal/service"
	"bitwise74/notes-api/pkg/middleware"
	"bitwise74/notes-api/pkg/security"
	"fmt"
	"net/http"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

func NewRouter() (*gin.Engine, error) {
	d := &internal.Deps{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database

	makeLogger()

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors"),
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "TurnstileToken", "X-Requested-With"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	rateLimit := viper.GetInt("security.rate_limit")

	authGate := middleware.NewAuthMiddleware(database)
	turnstile := middleware.NewTurnstileMiddleware()
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
	})

	// GET /health			-> Liveness and database status
	router.GET("/health", cacheFor(5), func(c *gin.Context) { root.Health(c, d) })

	m := router.Group("/api", rateLimiter, middleware.BodySizeLimiter(1<<20))

	a := m.Group("/auth")
	{
		// POST /api/auth/register	-> Registers a new user
		a.POST("/register", func(c *gin.Context) { auth.Register(c, d) })

		// POST /api/auth/login		-> Logs in a user and returns a JWT token
		a.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// GET /api/auth/verify-email	-> Consumes an email verification token
		a.GET("/verify-email", func(c *gin.Context) { auth.VerifyEmail(c, d) })

		// POST /api/auth/forgot-password -> Mails a password reset token
		a.POST("/forgot-password", func(c *gin.Context) { auth.ForgotPassword(c, d) })

		// POST /api/auth/reset-password -> Consumes a reset token and sets a new password
		a.POST("/reset-password", func(c *gin.Context) { auth.ResetPassword(c, d) })

		// GET /api/auth/profile	-> Returns the authenticated user
		a.GET("/profile", authGate, func(c *gin.Context) { auth.Profile(c, d) })
	}

	n := m.Group("/notes")
	{
		// POST /api/notes		-> Creates a note
		n.POST("", authGate, func(c *gin.Context) { notes.Create(c, d) })

		// GET /api/notes		-> Returns the caller's notes, newest first
		n.GET("", authGate, func(c *gin.Context) { notes.List(c, d) })

		// PUT /api/notes/:id		-> Partially updates a note owned by the caller
		n.PUT("/:id", authGate, func(c *gin.Context) { notes.Update(c, d) })

		// DELETE /api/notes/:id	-> Deletes a note owned by the caller
		n.DELETE("/:id", authGate, func(c *gin.Context) { notes.Delete(c, d) })

		// POST /api/notes/summary	-> Generates an AI summary for arbitrary content
		n.POST("/summary", turnstile, func(c *gin.Context) { notes.Summary(c, d) })
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	d.Argon = security.New()
	d.Mail = service.NewMailer()
	d.AI = service.NewSummarizer()

	// Expired reset tokens are rejected on use, the sweep just clears
	// them out of the table
	service.ResetTokenCleanup(time.Hour, database)

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	var lvl zapcore.Level
	if err := lvl.Set(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
