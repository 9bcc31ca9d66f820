package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/catalog/service"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/pkg/echox"
)

type SyncController struct {
	syncService service.SyncService
	logger      lib.Logger
}

// NewSyncController creates new sync controller
func NewSyncController(syncService service.SyncService, logger lib.Logger) SyncController {
	return SyncController{
		syncService: syncService,
		logger:      logger,
	}
}

// @tags Sync
// @summary Trigger Upstream Sync
// @produce application/json
// @success 200 {object} echox.Response{data=service.SyncResult} "ok"
// @failure 403 {object} echox.Response "forbidden"
// @failure 502 {object} echox.Response "upstream error"
// @router /api/v1/sync [post]
func (a SyncController) Run(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return echox.Fail(ctx, err)
	}

	result, err := a.syncService.Run(ctx.Request().Context())
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, result)
}
