package api

import (
	"github.com/pawhub/pawhub/api/account"
	accountRoute "github.com/pawhub/pawhub/api/account/route"
	"github.com/pawhub/pawhub/api/catalog"
	catalogRoute "github.com/pawhub/pawhub/api/catalog/route"
	"github.com/pawhub/pawhub/api/middlewares"
	"github.com/pawhub/pawhub/api/platform"
	platformRoute "github.com/pawhub/pawhub/api/platform/route"

	"go.uber.org/fx"
)

// Module exports all api modules
var Module = fx.Options(
	middlewares.Module,
	catalog.Module,
	account.Module,
	platform.Module,
	fx.Provide(NewRoutes),
)

// Routes aggregates routes of all modules
type Routes struct {
	Catalog  catalogRoute.Routes
	Account  accountRoute.Routes
	Platform platformRoute.Routes
}

// NewRoutes creates aggregated routes
func NewRoutes(
	catalog catalogRoute.Routes,
	account accountRoute.Routes,
	platform platformRoute.Routes,
) Routes {
	return Routes{
		Catalog:  catalog,
		Account:  account,
		Platform: platform,
	}
}

// Setup sets up all routes
func (r Routes) Setup() {
	r.Catalog.Setup()
	r.Account.Setup()
	r.Platform.Setup()
}
