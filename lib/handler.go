package lib

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HttpHandler wraps the echo engine and the versioned route group
type HttpHandler struct {
	Engine   *echo.Echo
	RouterV1 *echo.Group
}

type echoValidator struct {
	validate *validator.Validate
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// NewHttpHandler creates the echo engine
func NewHttpHandler(logger Logger) HttpHandler {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Validator = &echoValidator{validate: validator.New()}

	return HttpHandler{
		Engine:   engine,
		RouterV1: engine.Group("/api/v1"),
	}
}
