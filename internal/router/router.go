package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework for routing
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/hausenergie/energymon/internal/config"
	"github.com/hausenergie/energymon/internal/handler"    // handlers implementing the endpoints
	"github.com/hausenergie/energymon/internal/middleware" // JWT, cache and rate-limit middleware
)

// Handlers collects every handler the router wires up.  The server command
// constructs them once with their repositories and passes them in; the
// router owns no state of its own.
type Handlers struct {
	Auth        *handler.AuthHandler
	Rooms       *handler.RoomHandler
	Devices     *handler.DeviceHandler
	Consumption *handler.ConsumptionHandler
	Users       *handler.UserHandler
	GSI         *handler.GSIHandler
}

// Register wires all routes onto the Echo instance.  /register and /login
// (plus /refresh and /logout) are open; everything under /api requires a
// valid bearer token.  The Redis-backed rate limiter covers the whole API;
// it runs before authentication, so its default key buckets by client IP
// and route.  The response cache sits only in front of the consumption
// aggregation endpoints.  Both become no-ops when rdb is nil.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, h Handlers) {
	e.Use(echomw.CORS())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Session endpoints, no token required.
	e.POST("/register", h.Auth.Register)
	e.POST("/login", h.Auth.Login)
	e.POST("/refresh", h.Auth.Refresh)
	e.POST("/logout", h.Auth.Logout)

	// Protected API. JWTAuth stores user_id/username in the context; every
	// handler below scopes its queries on that user id.
	api := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret))

	api.GET("/rooms", h.Rooms.List)
	api.POST("/rooms", h.Rooms.Create)
	api.DELETE("/room/:room_id", h.Rooms.Delete)

	api.GET("/device/:device_id/readings", h.Devices.Readings)
	api.POST("/device/:device_id/readings", h.Devices.Ingest)

	api.GET("/user/profile", h.Users.Profile)
	api.GET("/gsi", h.GSI.Prediction)

	// Aggregations are the hottest reads on the dashboard; cache them.
	// The cache key includes the authenticated user and the query string,
	// so range flips and different users never collide.
	consumption := api.Group("/consumption", middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	consumption.GET("/summary", h.Consumption.Summary)
	consumption.GET("/by-room", h.Consumption.ByRoom)
	consumption.GET("/hourly", h.Consumption.Hourly)
	consumption.GET("/merged", h.Consumption.Merged)
}
