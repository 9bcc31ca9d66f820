package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/account/service"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/pkg/echox"
)

// AuthMiddleware resolves the bearer token into the current user claims
type AuthMiddleware struct {
	handler     lib.HttpHandler
	logger      lib.Logger
	config      lib.Config
	authService service.AuthService
}

// NewAuthMiddleware creates new auth middleware
func NewAuthMiddleware(
	handler lib.HttpHandler,
	logger lib.Logger,
	config lib.Config,
	authService service.AuthService,
) AuthMiddleware {
	return AuthMiddleware{
		handler:     handler,
		logger:      logger,
		config:      config,
		authService: authService,
	}
}

func (a AuthMiddleware) core() echo.MiddlewareFunc {
	prefixes := a.config.Auth.IgnorePathPrefixes

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if isIgnorePath(ctx.Request().URL.Path, prefixes...) {
				return next(ctx)
			}

			token := extractToken(ctx.Request())
			if token == "" {
				return echox.Response{Code: http.StatusUnauthorized}.JSON(ctx)
			}

			claims, err := a.authService.ParseToken(token)
			if err != nil {
				return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
			}

			ctx.Set(constants.CurrentUser, claims)
			return next(ctx)
		}
	}
}

// extractToken reads the bearer token from the Authorization header,
// falling back to the access_token query parameter for websocket clients
func extractToken(request *http.Request) string {
	auth := request.Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return request.URL.Query().Get("access_token")
}

func (a AuthMiddleware) Setup() {
	if !a.config.Auth.Enable {
		a.logger.Zap.Warn("auth middleware disabled, all endpoints are anonymous")
		return
	}

	a.handler.Engine.Use(a.core())
}
