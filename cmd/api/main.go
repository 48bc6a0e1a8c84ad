package main

import (
	_ "fixsync/docs"
	"fixsync/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FixSync Job API
// @version         1.0
// @description     Job collaboration engine shared by customers, technicians and admins.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorRole
// @in header
// @name X-Actor-Role
// @description customer, technician or admin, set by the authentication tier.

func main() {
	routes.Run()
}
