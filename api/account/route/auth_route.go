package route

import (
	"github.com/pawhub/pawhub/api/account/controller"
	"github.com/pawhub/pawhub/lib"
)

type AuthRoutes struct {
	logger         lib.Logger
	handler        lib.HttpHandler
	authController controller.AuthController
}

// NewAuthRoutes creates new auth routes
func NewAuthRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	authController controller.AuthController,
) AuthRoutes {
	return AuthRoutes{
		handler:        handler,
		logger:         logger,
		authController: authController,
	}
}

// Setup auth routes
func (a AuthRoutes) Setup() {
	api := a.handler.RouterV1.Group("/auth")
	{
		api.GET("/captcha", a.authController.GetCaptcha)
		api.POST("/register", a.authController.Register)
		api.POST("/login", a.authController.Login)
		api.DELETE("/logout", a.authController.Logout)
	}
}
