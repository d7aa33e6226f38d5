package main

import (
	_ "lumalens/docs"
	"lumalens/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           LumaLens Payment Confirmation API
// @version         1.0
// @description     Payment webhook ingestion and transaction verification backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
