package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/account/service"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
	"github.com/pawhub/pawhub/models/dto"
	"github.com/pawhub/pawhub/pkg/echox"
)

type UserController struct {
	userService service.UserService
	logger      lib.Logger
}

// NewUserController creates new user controller
func NewUserController(userService service.UserService, logger lib.Logger) UserController {
	return UserController{
		userService: userService,
		logger:      logger,
	}
}

func currentClaims(ctx echo.Context) (*dto.JwtClaims, error) {
	claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims)
	if !ok || claims == nil {
		return nil, errors.AuthTokenInvalid
	}
	return claims, nil
}

// @tags User
// @summary Get Current User Info
// @produce application/json
// @success 200 {object} echox.Response{data=dto.CurrentUserInfo} "ok"
// @failure 401 {object} echox.Response "unauthorized"
// @router /api/v1/users/me [get]
func (a UserController) Me(ctx echo.Context) error {
	claims, err := currentClaims(ctx)
	if err != nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
	}

	info, err := a.userService.GetCurrentUserInfo(claims.ID)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, info)
}

// @tags User
// @summary Update Profile
// @produce application/json
// @param data body account.ProfileForm true "ProfileForm"
// @success 200 {object} echox.Response "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 401 {object} echox.Response "unauthorized"
// @router /api/v1/users/profile [put]
func (a UserController) UpdateProfile(ctx echo.Context) error {
	claims, err := currentClaims(ctx)
	if err != nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
	}

	form := new(account.ProfileForm)
	if err := ctx.Bind(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	if err := ctx.Validate(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.userService.WithTrx(trxHandle).UpdateProfile(claims.ID, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}

// @tags User
// @summary Update Password
// @produce application/json
// @param data body account.PasswordForm true "PasswordForm"
// @success 200 {object} echox.Response "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 401 {object} echox.Response "unauthorized"
// @router /api/v1/users/password [put]
func (a UserController) UpdatePassword(ctx echo.Context) error {
	claims, err := currentClaims(ctx)
	if err != nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: err}.JSON(ctx)
	}

	form := new(account.PasswordForm)
	if err := ctx.Bind(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	if err := ctx.Validate(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	if err := a.userService.WithTrx(trxHandle).UpdatePassword(claims.ID, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}
