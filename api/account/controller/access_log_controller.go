package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/account/service"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
	"github.com/pawhub/pawhub/pkg/echox"
)

type AccessLogController struct {
	accessLogService service.AccessLogService
	logger           lib.Logger
}

// NewAccessLogController creates new access log controller
func NewAccessLogController(accessLogService service.AccessLogService, logger lib.Logger) AccessLogController {
	return AccessLogController{
		accessLogService: accessLogService,
		logger:           logger,
	}
}

// @tags AccessLog
// @summary Access Log Query
// @produce application/json
// @param data query account.AccessLogQueryParam true "AccessLogQueryParam"
// @success 200 {object} echox.Response{data=account.AccessLogs} "ok"
// @failure 403 {object} echox.Response "forbidden"
// @router /api/v1/logs [get]
func (a AccessLogController) Query(ctx echo.Context) error {
	claims, err := currentClaims(ctx)
	if err != nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
	}
	if !claims.IsAdmin {
		return echox.Fail(ctx, errors.UserNoPermission)
	}

	param := new(account.AccessLogQueryParam)
	if err := ctx.Bind(param); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	qr, err := a.accessLogService.Query(param)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OKWithPage(ctx, qr.List, qr.Pagination, param.GetWithEllipsis())
}
