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

type AnimalController struct {
	animalService service.AnimalService
	logger        lib.Logger
}

// NewAnimalController creates new animal controller
func NewAnimalController(animalService service.AnimalService, logger lib.Logger) AnimalController {
	return AnimalController{
		animalService: animalService,
		logger:        logger,
	}
}

// currentUserID returns the signed-in user's id, zero for anonymous
// browsing
func currentUserID(ctx echo.Context) uint64 {
	if claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims); ok && claims != nil {
		return claims.ID
	}
	return 0
}

// requireAdmin rejects callers without the admin flag
func requireAdmin(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims)
	if !ok || claims == nil {
		return errors.AuthTokenInvalid
	}
	if !claims.IsAdmin {
		return errors.UserNoPermission
	}
	return nil
}

// @tags Animal
// @summary Animal Query
// @produce application/json
// @param data query catalog.AnimalQueryParam true "AnimalQueryParam"
// @success 200 {object} echox.Response{data=catalog.Animals} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 500 {object} echox.Response "internal error"
// @router /api/v1/animals [get]
func (a AnimalController) Query(ctx echo.Context) error {
	param := new(catalog.AnimalQueryParam)
	if err := ctx.Bind(param); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	qr, err := a.animalService.Query(param, currentUserID(ctx))
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OKWithPage(ctx, qr.List, qr.Pagination, param.GetWithEllipsis())
}

// @tags Animal
// @summary Animal Get By ID
// @produce application/json
// @param id path int true "animal id"
// @success 200 {object} echox.Response{data=catalog.Animal} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 404 {object} echox.Response "not found"
// @router /api/v1/animals/{id} [get]
func (a AnimalController) Get(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	animal, err := a.animalService.Get(id, currentUserID(ctx))
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, animal)
}

// @tags Animal
// @summary Animal Filter Options
// @produce application/json
// @param species query string false "narrow breeds to one species"
// @success 200 {object} echox.Response{data=catalog.AnimalOptions} "ok"
// @failure 500 {object} echox.Response "internal error"
// @router /api/v1/animals/options [get]
func (a AnimalController) GetOptions(ctx echo.Context) error {
	options, err := a.animalService.Options(ctx.QueryParam("species"))
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, options)
}

// @tags Animal
// @summary Animal Create
// @produce application/json
// @param data body catalog.AnimalForm true "AnimalForm"
// @success 200 {object} echox.Response{data=catalog.Animal} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 403 {object} echox.Response "forbidden"
// @router /api/v1/animals [post]
func (a AnimalController) Create(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return echox.Fail(ctx, err)
	}

	form := new(catalog.AnimalForm)
	if err := ctx.Bind(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	if err := ctx.Validate(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	animal, err := a.animalService.WithTrx(trxHandle).Create(form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, animal)
}

// @tags Animal
// @summary Animal Update
// @produce application/json
// @param id path int true "animal id"
// @param data body catalog.AnimalForm true "AnimalForm"
// @success 200 {object} echox.Response{data=catalog.Animal} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 403 {object} echox.Response "forbidden"
// @failure 404 {object} echox.Response "not found"
// @router /api/v1/animals/{id} [put]
func (a AnimalController) Update(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return echox.Fail(ctx, err)
	}

	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	form := new(catalog.AnimalForm)
	if err := ctx.Bind(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	if err := ctx.Validate(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	animal, err := a.animalService.WithTrx(trxHandle).Update(id, form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, animal)
}

// @tags Animal
// @summary Animal Delete
// @produce application/json
// @param id path int true "animal id"
// @success 200 {object} echox.Response "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 403 {object} echox.Response "forbidden"
// @failure 404 {object} echox.Response "not found"
// @router /api/v1/animals/{id} [delete]
func (a AnimalController) Delete(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return echox.Fail(ctx, err)
	}

	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.animalService.WithTrx(trxHandle).Delete(id); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}
