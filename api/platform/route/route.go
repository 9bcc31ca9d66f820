package route

import "go.uber.org/fx"

// Module exports dependency to container
var Module = fx.Options(
	fx.Provide(NewPhotoRoutes),
	fx.Provide(NewWebSocketRoutes),
	fx.Provide(NewSwaggerRoutes),
	fx.Provide(NewRoutes),
)

// Routes contains multiple routes
type Routes []Route

// Route interface
type Route interface {
	Setup()
}

// NewRoutes sets up routes
func NewRoutes(
	photoRoutes PhotoRoutes,
	webSocketRoutes WebSocketRoutes,
	swaggerRoutes SwaggerRoutes,
) Routes {
	return Routes{
		photoRoutes,
		webSocketRoutes,
		swaggerRoutes,
	}
}

// Setup all the route
func (a Routes) Setup() {
	for _, route := range a {
		route.Setup()
	}
}
