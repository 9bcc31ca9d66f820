package main

import (
	"github.com/pawhub/pawhub/cmd"
)

// @title PawHub API
// @version 1.0
// @description Animal adoption catalog API

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

func main() {
	cmd.Execute()
}
