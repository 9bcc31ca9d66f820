package route

import (
	"github.com/pawhub/pawhub/api/account/controller"
	"github.com/pawhub/pawhub/lib"
)

type UserRoutes struct {
	logger         lib.Logger
	handler        lib.HttpHandler
	userController controller.UserController
}

// NewUserRoutes creates new user routes
func NewUserRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	userController controller.UserController,
) UserRoutes {
	return UserRoutes{
		handler:        handler,
		logger:         logger,
		userController: userController,
	}
}

// Setup user routes
func (a UserRoutes) Setup() {
	api := a.handler.RouterV1.Group("/users")
	{
		api.GET("/me", a.userController.Me)
		api.PUT("/profile", a.userController.UpdateProfile)
		api.PUT("/password", a.userController.UpdatePassword)
	}
}
