package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/catalog/service"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/pkg/echox"
)

type ShelterController struct {
	shelterService service.ShelterService
	logger         lib.Logger
}

// NewShelterController creates new shelter controller
func NewShelterController(shelterService service.ShelterService, logger lib.Logger) ShelterController {
	return ShelterController{
		shelterService: shelterService,
		logger:         logger,
	}
}

// @tags Shelter
// @summary Shelter Query
// @produce application/json
// @param data query catalog.ShelterQueryParam true "ShelterQueryParam"
// @success 200 {object} echox.Response{data=catalog.Shelters} "ok"
// @failure 400 {object} echox.Response "bad request"
// @router /api/v1/shelters [get]
func (a ShelterController) Query(ctx echo.Context) error {
	param := new(catalog.ShelterQueryParam)
	if err := ctx.Bind(param); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	qr, err := a.shelterService.Query(param)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OKWithPage(ctx, qr.List, qr.Pagination, param.GetWithEllipsis())
}

// @tags Shelter
// @summary Shelter Get By ID
// @produce application/json
// @param id path int true "shelter id"
// @success 200 {object} echox.Response{data=catalog.Shelter} "ok"
// @failure 404 {object} echox.Response "not found"
// @router /api/v1/shelters/{id} [get]
func (a ShelterController) Get(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	shelter, err := a.shelterService.Get(id)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, shelter)
}

// @tags Shelter
// @summary Shelter Options
// @produce application/json
// @success 200 {object} echox.Response{data=[]catalog.ShelterOption} "ok"
// @failure 500 {object} echox.Response "internal error"
// @router /api/v1/shelters/options [get]
func (a ShelterController) GetOptions(ctx echo.Context) error {
	options, err := a.shelterService.Options()
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, options)
}

// @tags Shelter
// @summary Shelter Create
// @produce application/json
// @param data body catalog.Shelter true "Shelter"
// @success 200 {object} echox.Response{data=catalog.Shelter} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 403 {object} echox.Response "forbidden"
// @router /api/v1/shelters [post]
func (a ShelterController) Create(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return echox.Fail(ctx, err)
	}

	shelter := new(catalog.Shelter)
	if err := ctx.Bind(shelter); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.shelterService.WithTrx(trxHandle).Create(shelter); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, shelter)
}

// @tags Shelter
// @summary Shelter Update
// @produce application/json
// @param id path int true "shelter id"
// @param data body catalog.Shelter true "Shelter"
// @success 200 {object} echox.Response "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 403 {object} echox.Response "forbidden"
// @failure 404 {object} echox.Response "not found"
// @router /api/v1/shelters/{id} [put]
func (a ShelterController) Update(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return echox.Fail(ctx, err)
	}

	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	shelter := new(catalog.Shelter)
	if err := ctx.Bind(shelter); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.shelterService.WithTrx(trxHandle).Update(id, shelter); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}

// @tags Shelter
// @summary Shelter Delete
// @produce application/json
// @param id path int true "shelter id"
// @success 200 {object} echox.Response "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 403 {object} echox.Response "forbidden"
// @failure 404 {object} echox.Response "not found"
// @router /api/v1/shelters/{id} [delete]
func (a ShelterController) Delete(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return echox.Fail(ctx, err)
	}

	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.shelterService.WithTrx(trxHandle).Delete(id); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}
