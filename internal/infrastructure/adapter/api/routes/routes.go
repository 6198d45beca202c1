package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/auth"
)

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	Sessions *handler.SessionHandler
	Lockers  *handler.LockerHandler
	Health   *handler.HealthHandler
	Metrics  http.Handler // optional
}

// Options configures the middleware chain
type Options struct {
	// Identity authenticates callers: middleware.Auth or, in development, middleware.HeaderIdentity
	Identity       gin.HandlerFunc
	RateLimit      rate.Limit
	RateBurst      int
	LockerCache    *cache.Cache
	LockerCacheTTL time.Duration
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, opts Options) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RateLimiter(opts.RateLimit, opts.RateBurst))
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/health", h.Health.Check)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	store := opts.LockerCache
	if store == nil {
		store = cache.New(opts.LockerCacheTTL, 2*opts.LockerCacheTTL)
	}
	caching := middleware.Cache(store, opts.LockerCacheTTL)
	invalidate := middleware.InvalidateCache(store)

	api := router.Group("/")
	if opts.Identity != nil {
		api.Use(opts.Identity)
	}

	sessions := api.Group("/sessions", invalidate)
	{
		sessions.POST("", h.Sessions.StartSession)
		sessions.GET("/:id", h.Sessions.GetSession)
		sessions.GET("/:id/remaining", h.Sessions.GetRemainingTime)
		sessions.PUT("/:id", h.Sessions.UpdateSession)
		sessions.POST("/:id/unlock", h.Sessions.UnlockLocker)
	}

	me := api.Group("/me")
	{
		me.GET("/sessions", h.Sessions.ListMySessions)
		me.GET("/statistics", h.Sessions.GetMyStatistics)
	}

	lockers := api.Group("/lockers")
	{
		lockers.GET("", caching, h.Lockers.ListLockers)
		lockers.GET("/:id", caching, h.Lockers.GetLocker)
		lockers.PUT("/:id", middleware.RequireRole(auth.RoleAdmin), invalidate, h.Lockers.UpdateLocker)
	}
}
