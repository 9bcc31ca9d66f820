package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/catalog/service"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/models/dto"
	"github.com/pawhub/pawhub/pkg/echox"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
	logger          lib.Logger
}

// NewFavoriteController creates new favorite controller
func NewFavoriteController(favoriteService service.FavoriteService, logger lib.Logger) FavoriteController {
	return FavoriteController{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

func currentClaims(ctx echo.Context) (*dto.JwtClaims, error) {
	claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims)
	if !ok || claims == nil {
		return nil, errors.AuthTokenInvalid
	}
	return claims, nil
}

// @tags Favorite
// @summary Favorite Add
// @produce application/json
// @param id path int true "animal id"
// @success 200 {object} echox.Response "ok"
// @failure 401 {object} echox.Response "unauthorized"
// @failure 404 {object} echox.Response "not found"
// @router /api/v1/animals/{id}/favorite [put]
func (a FavoriteController) Add(ctx echo.Context) error {
	claims, err := currentClaims(ctx)
	if err != nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
	}

	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.favoriteService.WithTrx(trxHandle).Add(claims.ID, id); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}

// @tags Favorite
// @summary Favorite Remove
// @produce application/json
// @param id path int true "animal id"
// @success 200 {object} echox.Response "ok"
// @failure 401 {object} echox.Response "unauthorized"
// @router /api/v1/animals/{id}/favorite [delete]
func (a FavoriteController) Remove(ctx echo.Context) error {
	claims, err := currentClaims(ctx)
	if err != nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
	}

	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.favoriteService.WithTrx(trxHandle).Remove(claims.ID, id); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}

// @tags Favorite
// @summary Favorite Query
// @produce application/json
// @param data query catalog.FavoriteQueryParam true "FavoriteQueryParam"
// @success 200 {object} echox.Response{data=catalog.Animals} "ok"
// @failure 401 {object} echox.Response "unauthorized"
// @router /api/v1/favorites [get]
func (a FavoriteController) Query(ctx echo.Context) error {
	claims, err := currentClaims(ctx)
	if err != nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
	}

	param := new(catalog.FavoriteQueryParam)
	if err := ctx.Bind(param); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	qr, err := a.favoriteService.Query(claims.ID, param)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OKWithPage(ctx, qr.List, qr.Pagination, param.GetWithEllipsis())
}
