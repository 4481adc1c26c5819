package main

import (
	_ "freelanceflow/docs"
	"freelanceflow/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FreelanceFlow Billing API
// @version         1.0
// @description     Freelancer billing ledger (invoices, payments, reports) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-Id
// @description Caller identity propagated by the gateway.

func main() {
	routes.Run()
}
