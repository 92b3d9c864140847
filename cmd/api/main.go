package main

import (
	_ "toyauction/docs"
	"toyauction/internal/adapter/http/routes"
	"toyauction/pkg"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Toy Auction API
// @version         1.0
// @description     Auction marketplace for collectible toys: bidding, PromptPay payment reconciliation and shipping, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	pkg.InitLogger()
	routes.Run()
}
