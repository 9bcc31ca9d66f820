package middlewares

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mssola/useragent"

	"github.com/pawhub/pawhub/api/account/service"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
	"github.com/pawhub/pawhub/models/dto"
)

// AccessLogMiddleware persists an audit row for every mutating request
type AccessLogMiddleware struct {
	handler    lib.HttpHandler
	logger     lib.Logger
	logService service.AccessLogService
}

// NewAccessLogMiddleware creates new access log middleware
func NewAccessLogMiddleware(
	handler lib.HttpHandler,
	logger lib.Logger,
	logService service.AccessLogService,
) AccessLogMiddleware {
	return AccessLogMiddleware{
		handler:    handler,
		logger:     logger,
		logService: logService,
	}
}

// Setup sets up the access log middleware
func (m AccessLogMiddleware) Setup() {
	m.handler.Engine.Use(m.core())
}

// audited endpoints, keyed by method plus path with parameter values stripped
var auditModules = map[string]string{
	"POST:/api/v1/animals":            "animal",
	"PUT:/api/v1/animals":             "animal",
	"DELETE:/api/v1/animals":          "animal",
	"PUT:/api/v1/animals/favorite":    "favorite",
	"DELETE:/api/v1/animals/favorite": "favorite",
	"POST:/api/v1/shelters":           "shelter",
	"PUT:/api/v1/shelters":            "shelter",
	"DELETE:/api/v1/shelters":         "shelter",
	"POST:/api/v1/photos":             "photo",
	"POST:/api/v1/auth/register":      "auth",
	"POST:/api/v1/auth/login":         "auth",
	"DELETE:/api/v1/auth/logout":      "auth",
	"PUT:/api/v1/users/profile":       "user",
	"PUT:/api/v1/users/password":      "user",
}

func (m AccessLogMiddleware) core() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method != "POST" && method != "PUT" && method != "DELETE" {
				return next(c)
			}

			path := c.Request().URL.Path
			module, ok := auditModules[method+":"+stripPathParams(path)]
			if !ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			var userID uint64
			var username string
			if claims, ok := c.Get(constants.CurrentUser).(*dto.JwtClaims); ok && claims != nil {
				userID = claims.ID
				username = claims.Username
			}

			ua := useragent.New(c.Request().UserAgent())
			browser, _ := ua.Browser()

			row := &account.AccessLog{
				UserID:    userID,
				Username:  username,
				Module:    module,
				Method:    method,
				Path:      path,
				IP:        c.RealIP(),
				Browser:   browser,
				OS:        ua.OS(),
				Status:    c.Response().Status,
				LatencyMs: time.Since(start).Milliseconds(),
			}

			// fire and forget, an audit miss never fails the request
			go func() {
				if saveErr := m.logService.Create(row); saveErr != nil {
					m.logger.Zap.Errorf("failed to save access log: %v", saveErr)
				}
			}()

			return err
		}
	}
}

// path segments that are part of route definitions rather than parameters
var knownPathSegments = map[string]bool{
	"api": true, "v1": true,
	"animals": true, "options": true, "favorite": true, "favorites": true,
	"shelters": true, "photos": true,
	"auth": true, "register": true, "login": true, "logout": true, "captcha": true,
	"users": true, "me": true, "profile": true, "password": true,
	"sync": true, "ws": true,
}

// stripPathParams drops parameter values (numeric IDs, filenames) so the
// request path can be matched against the audit table
func stripPathParams(path string) string {
	parts := strings.Split(path, "/")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || knownPathSegments[part] {
			result = append(result, part)
		}
	}
	return strings.Join(result, "/")
}
