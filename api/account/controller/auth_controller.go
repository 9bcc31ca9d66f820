package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/account/service"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/dto"
	"github.com/pawhub/pawhub/pkg/echox"
)

type AuthController struct {
	logger      lib.Logger
	config      lib.Config
	captcha     lib.Captcha
	authService service.AuthService
	userService service.UserService
}

// NewAuthController creates new auth controller
func NewAuthController(
	logger lib.Logger,
	config lib.Config,
	captcha lib.Captcha,
	authService service.AuthService,
	userService service.UserService,
) AuthController {
	return AuthController{
		logger:      logger,
		config:      config,
		captcha:     captcha,
		authService: authService,
		userService: userService,
	}
}

// verifyCaptcha rejects the request when captcha checking is enabled and
// the answer does not match
func (a AuthController) verifyCaptcha(id, code string) error {
	if !a.config.Captcha.Enable {
		return nil
	}

	if !a.captcha.Verify(id, code, true) {
		return errors.CaptchaAnswerCodeNoMatch
	}

	return nil
}

// @tags Auth
// @summary Get Captcha
// @produce application/json
// @success 200 {object} echox.Response "ok"
// @failure 500 {object} echox.Response "internal error"
// @router /api/v1/auth/captcha [get]
func (a AuthController) GetCaptcha(ctx echo.Context) error {
	id, b64s, _, err := a.captcha.Generate()
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, echo.Map{"captchaId": id, "captchaBase64": b64s})
}

// @tags Auth
// @summary Register
// @produce application/json
// @param data body dto.Register true "Register"
// @success 200 {object} echox.Response{data=account.User} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 409 {object} echox.Response "username taken"
// @router /api/v1/auth/register [post]
func (a AuthController) Register(ctx echo.Context) error {
	form := new(dto.Register)
	if err := ctx.Bind(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	if err := ctx.Validate(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	if err := a.verifyCaptcha(form.CaptchaID, form.CaptchaCode); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	trxHandle := echox.GetTrx(ctx, constants.DBTransaction)
	user, err := a.userService.WithTrx(trxHandle).Register(form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, user)
}

// @tags Auth
// @summary Login
// @produce application/json
// @param data body dto.Login true "Login"
// @success 200 {object} echox.Response{data=dto.LoginResponse} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 401 {object} echox.Response "bad credentials"
// @router /api/v1/auth/login [post]
func (a AuthController) Login(ctx echo.Context) error {
	form := new(dto.Login)
	if err := ctx.Bind(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	if err := ctx.Validate(form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	if err := a.verifyCaptcha(form.CaptchaID, form.CaptchaCode); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	user, err := a.userService.Verify(form.Username, form.Password)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	token, err := a.authService.GenerateToken(user)
	if err != nil {
		return echox.Response{Code: http.StatusInternalServerError, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, token)
}

// @tags Auth
// @summary Logout
// @produce application/json
// @success 200 {object} echox.Response "ok"
// @failure 401 {object} echox.Response "unauthorized"
// @router /api/v1/auth/logout [delete]
func (a AuthController) Logout(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims)
	if !ok || claims == nil {
		return echox.Response{Code: http.StatusUnauthorized, Message: errors.AuthTokenInvalid}.JSON(ctx)
	}

	if err := a.authService.DestroyToken(claims.Username); err != nil {
		return echox.Response{Code: http.StatusInternalServerError, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}
