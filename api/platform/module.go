package platform

import (
	"go.uber.org/fx"

	"github.com/pawhub/pawhub/api/platform/controller"
	"github.com/pawhub/pawhub/api/platform/route"
	"github.com/pawhub/pawhub/api/platform/service"
)

// Module exports platform module
var Module = fx.Options(
	controller.Module,
	service.Module,
	route.Module,
)
