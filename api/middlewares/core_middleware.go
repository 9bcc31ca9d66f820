package middlewares

import (
	"fmt"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/lib"
)

// core middleware is a functional extension to "echo",
// including database transactions and panic recovery
// and more
type CoreMiddleware struct {
	handler lib.HttpHandler
	logger  lib.Logger
	db      lib.Database
}

// NewCoreMiddleware creates new database transactions middleware
func NewCoreMiddleware(handler lib.HttpHandler, logger lib.Logger, db lib.Database) CoreMiddleware {
	return CoreMiddleware{
		handler: handler,
		logger:  logger,
		db:      db,
	}
}

func (a CoreMiddleware) core() echo.MiddlewareFunc {
	logger := a.logger.DesugarZap.With(zap.String("module", "core-mw"))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			// WebSocket upgrades never touch the database
			if ctx.Request().URL.Path == "/ws" {
				return next(ctx)
			}

			// For SQLite: disable auto-transaction completely to avoid database locking
			// SQLite has limited concurrency support and auto-transactions cause deadlocks
			if lib.IsSQLite() {
				return next(ctx)
			}

			txHandle := a.db.ORM.Begin()
			logger.Debug("beginning database transaction")

			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					// recovery stack
					stack := make([]byte, 4<<10)
					length := runtime.Stack(stack, false)
					logger.Error(fmt.Sprintf("[PANIC RECOVER] %v %s\n", err, stack[:length]))

					txHandle.Rollback()
					ctx.Error(err)
				}
			}()

			ctx.Set(constants.DBTransaction, txHandle)

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			// rollback on client and server errors, commit otherwise
			if code := ctx.Response().Status; code >= 400 {
				logger.Debug(fmt.Sprintf("rolling back transaction due to status code: %d", code))
				txHandle.Rollback()
			} else {
				if err := txHandle.Commit().Error; err != nil {
					logger.Error(fmt.Sprintf("trx commit error: %v", err))
				}
			}

			return nil
		}
	}
}

func (a CoreMiddleware) Setup() {
	a.logger.Zap.Info("setting up core middleware")
	a.handler.Engine.Use(a.core())
}
