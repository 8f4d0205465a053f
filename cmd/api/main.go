package main

import (
	_ "traful_pagos/docs"
	"traful_pagos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Traful Pagos API
// @version         1.0
// @description     Municipal fee payments: search, checkout, reconciliation, receipts and manual collections.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:10000

// @BasePath  /api

func main() {
	routes.Run()
}
