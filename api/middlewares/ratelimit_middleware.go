package middlewares

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/pkg/echox"
)

// RateLimitMiddleware throttles requests per client IP
type RateLimitMiddleware struct {
	handler  lib.HttpHandler
	logger   lib.Logger
	visitors sync.Map // ip -> *rate.Limiter
}

// NewRateLimitMiddleware creates new rate limit middleware
func NewRateLimitMiddleware(handler lib.HttpHandler, logger lib.Logger) RateLimitMiddleware {
	return RateLimitMiddleware{
		handler: handler,
		logger:  logger,
	}
}

func (a RateLimitMiddleware) getVisitor(ip string) *rate.Limiter {
	if v, ok := a.visitors.Load(ip); ok {
		return v.(*rate.Limiter)
	}

	// 10 requests per second, bursts of 20
	limiter := rate.NewLimiter(10, 20)
	actual, _ := a.visitors.LoadOrStore(ip, limiter)
	return actual.(*rate.Limiter)
}

func (a RateLimitMiddleware) Setup() {
	a.handler.Engine.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ip := ctx.RealIP()
			limiter := a.getVisitor(ip)

			if !limiter.Allow() {
				return echox.Response{
					Code:    http.StatusTooManyRequests,
					Message: "Too many requests",
				}.JSON(ctx)
			}

			return next(ctx)
		}
	})
}
