package catalog

import (
	"go.uber.org/fx"

	"github.com/pawhub/pawhub/api/catalog/controller"
	"github.com/pawhub/pawhub/api/catalog/repository"
	"github.com/pawhub/pawhub/api/catalog/route"
	"github.com/pawhub/pawhub/api/catalog/service"
)

// Module exports catalog module
var Module = fx.Options(
	controller.Module,
	service.Module,
	repository.Module,
	route.Module,
)
