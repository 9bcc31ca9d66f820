package account

import (
	"go.uber.org/fx"

	"github.com/pawhub/pawhub/api/account/controller"
	"github.com/pawhub/pawhub/api/account/repository"
	"github.com/pawhub/pawhub/api/account/route"
	"github.com/pawhub/pawhub/api/account/service"
)

// Module exports account module
var Module = fx.Options(
	controller.Module,
	service.Module,
	repository.Module,
	route.Module,
)
