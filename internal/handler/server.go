package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// Ping calls f(ctx)
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Limiter decides whether a client may make another request
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Options wires the dependencies of the HTTP server
type Options struct {
	Catalog      *service.CatalogService
	Quiz         *service.QuizService
	Hub          *ws.Hub
	Store        Pinger
	Limiter      Limiter
	AllowOrigins []string
}

// NewServer builds the echo instance serving the trivia API
func NewServer(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.AllowOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
	}))

	NewCatalogHandler(opts.Catalog).Register(e)

	var quizMiddleware []echo.MiddlewareFunc
	if opts.Limiter != nil {
		quizMiddleware = append(quizMiddleware, RateLimit(opts.Limiter))
	}
	NewQuizHandler(opts.Quiz).Register(e, quizMiddleware...)

	if opts.Hub != nil {
		e.GET("/ws", NewWebSocketHandler(opts.Hub).HandleWebSocket)
	}

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		if opts.Store != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := opts.Store.Ping(ctx); err != nil {
				slog.Warn("health check failed", "error", err)
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
				})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	return e
}
